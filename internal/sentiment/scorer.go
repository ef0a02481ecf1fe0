package sentiment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/surveyflow/internal/models"
)

const DEFAULT_WORKERS = 4

// ScoreText scores every value in order. Missing values are scored as empty
// text. Records are independent, so plain scorers run on up to workers
// goroutines; batch scorers get one call.
func ScoreText(ctx context.Context, values []models.Value, scorer PolarityScorer, workers int) ([]models.TextRecord, error) {
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = v.String()
	}

	scores, err := scoreAll(ctx, scorer, texts, workers)
	if err != nil {
		return nil, err
	}

	records := make([]models.TextRecord, len(texts))
	for i, text := range texts {
		if err := checkRange(text, scores[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = models.TextRecord{
			Index:     i,
			Text:      text,
			Polarity:  scores[i],
			Sentiment: Label(scores[i]),
		}
	}
	return records, nil
}

func scoreAll(ctx context.Context, scorer PolarityScorer, texts []string, workers int) ([]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if b, ok := scorer.(BatchScorer); ok {
		scores, err := b.PolarityBatch(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(scores) != len(texts) {
			return nil, fmt.Errorf("batch scorer returned %d scores for %d texts", len(scores), len(texts))
		}
		return scores, nil
	}

	if workers < 1 {
		workers = DEFAULT_WORKERS
	}

	scores := make([]float64, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		g.Go(func() error {
			p, err := scorer.Polarity(gctx, text)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			scores[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
