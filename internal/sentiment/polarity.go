// Package sentiment scores free-text answers through a pluggable polarity
// capability and buckets the scores.
package sentiment

import (
	"context"
	"fmt"
	"math"

	"github.com/spacesedan/surveyflow/internal/models"
)

const (
	POSITIVE_FLOOR   = 0.1
	NEGATIVE_CEILING = -0.1
)

// PolarityScorer maps text to a polarity in [-1, 1]. Empty text should score
// whatever the implementation considers neutral.
type PolarityScorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// BatchScorer is implemented by scorers that are cheaper to call once for
// many texts. Scores are returned in input order.
type BatchScorer interface {
	PolarityScorer
	PolarityBatch(ctx context.Context, texts []string) ([]float64, error)
}

// ScorerFunc adapts a plain function to PolarityScorer.
type ScorerFunc func(ctx context.Context, text string) (float64, error)

func (f ScorerFunc) Polarity(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// Label buckets a text polarity. Both thresholds are strict, so exactly
// 0.1 and -0.1 are Neutral.
func Label(polarity float64) models.SentimentLabel {
	switch {
	case polarity > POSITIVE_FLOOR:
		return models.Positive
	case polarity < NEGATIVE_CEILING:
		return models.Negative
	default:
		return models.Neutral
	}
}

func checkRange(text string, polarity float64) error {
	if math.IsNaN(polarity) || polarity < -1 || polarity > 1 {
		return fmt.Errorf("polarity %v for %q is outside [-1, 1]", polarity, preview(text))
	}
	return nil
}

func preview(text string) string {
	r := []rune(text)
	if len(r) > 40 {
		return string(r[:40]) + "..."
	}
	return text
}
