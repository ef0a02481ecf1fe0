// Package analysis runs one survey column through classification, scoring,
// aggregation and narrative generation.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/surveyflow/internal/classifier"
	"github.com/spacesedan/surveyflow/internal/models"
	"github.com/spacesedan/surveyflow/internal/numeric"
	"github.com/spacesedan/surveyflow/internal/sentiment"
	"github.com/spacesedan/surveyflow/internal/summary"
)

const NO_WORD_CLOUD_NOTICE = "Data analyzed was numerical, so no word cloud was generated."

// Result holds exactly one of Numeric or Text, matching Kind.
type Result struct {
	Kind    models.ColumnKind     `json:"kind"`
	Numeric *models.NumericResult `json:"numeric,omitempty"`
	Text    *models.TextResult    `json:"text,omitempty"`
}

// Summary returns the generated narrative of whichever path ran.
func (r Result) Summary() models.Summary {
	if r.Numeric != nil {
		return r.Numeric.Summary
	}
	if r.Text != nil {
		return r.Text.Summary
	}
	return models.Summary{}
}

// Analyzer holds the text polarity capability. It keeps no per-call state,
// so one Analyzer can serve concurrent calls on separate tables.
type Analyzer struct {
	Scorer  sentiment.PolarityScorer
	Workers int
}

func NewAnalyzer(scorer sentiment.PolarityScorer, workers int) *Analyzer {
	return &Analyzer{Scorer: scorer, Workers: workers}
}

func (a *Analyzer) Analyze(ctx context.Context, table *models.Table, column string) (Result, error) {
	values, ok := table.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	col := classifier.Classify(column, values)
	slog.Info("[Analyzer] Column classified",
		slog.String("column", column),
		slog.String("kind", string(col.Kind)),
		slog.Int("records", len(values)))

	switch col.Kind {
	case models.KindNumeric, models.KindPercentage:
		res, err := analyzeNumeric(col)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: col.Kind, Numeric: res}, nil
	case models.KindText:
		res, err := a.analyzeText(ctx, col)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: col.Kind, Text: res}, nil
	default:
		return Result{}, fmt.Errorf("unknown column kind %q", col.Kind)
	}
}

func analyzeNumeric(col models.ClassifiedColumn) (*models.NumericResult, error) {
	records := numeric.Normalize(col.Series)
	agg, err := AggregateNumeric(records)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col.Name, err)
	}

	dist := agg.Distribution
	return &models.NumericResult{
		Column:        col.Name,
		Kind:          col.Kind,
		Records:       records,
		Distribution:  dist,
		AverageRating: agg.Mean,
		Stats:         numeric.Describe(records),
		Summary: summary.Numeric(summary.NumericInput{
			PositivePct:   dist.Percent(models.Positive),
			NeutralPct:    dist.Percent(models.Neutral),
			NegativePct:   dist.Percent(models.Negative),
			AverageRating: agg.Mean,
		}),
		Notice: NO_WORD_CLOUD_NOTICE,
	}, nil
}

func (a *Analyzer) analyzeText(ctx context.Context, col models.ClassifiedColumn) (*models.TextResult, error) {
	if len(col.Values) == 0 {
		return nil, fmt.Errorf("column %q: %w", col.Name, ErrEmptyDataset)
	}

	records, err := sentiment.ScoreText(ctx, col.Values, a.Scorer, a.Workers)
	if err != nil {
		return nil, fmt.Errorf("column %q: scoring text: %w", col.Name, err)
	}

	agg, err := AggregateText(records)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col.Name, err)
	}

	return &models.TextResult{
		Column:          col.Name,
		Records:         records,
		Distribution:    agg.Distribution,
		AveragePolarity: agg.Mean,
		Partition:       partition(col.Values, records),
		Summary: summary.Text(summary.TextInput{
			Counts:          agg.Distribution.Counts,
			AveragePolarity: agg.Mean,
			Order:           firstAppearance(records),
		}),
	}, nil
}

func firstAppearance(records []models.TextRecord) []models.SentimentLabel {
	var order []models.SentimentLabel
	seen := make(map[models.SentimentLabel]bool, len(models.Labels))
	for _, r := range records {
		if !seen[r.Sentiment] {
			seen[r.Sentiment] = true
			order = append(order, r.Sentiment)
		}
	}
	return order
}

// partition groups the raw non-missing text by label.
func partition(values []models.Value, records []models.TextRecord) map[models.SentimentLabel][]string {
	out := make(map[models.SentimentLabel][]string, len(models.Labels))
	for _, l := range models.Labels {
		out[l] = []string{}
	}
	for i, r := range records {
		if values[i].IsMissing() {
			continue
		}
		out[r.Sentiment] = append(out[r.Sentiment], r.Text)
	}
	return out
}
