package analysis

import (
	"github.com/spacesedan/surveyflow/internal/models"
	"github.com/spacesedan/surveyflow/internal/numeric"
)

// Aggregate is the distribution and mean of one scored column.
type Aggregate struct {
	Distribution models.Distribution
	Mean         float64
}

// AggregateNumeric averages the raw numeric values.
func AggregateNumeric(records []models.NumericRecord) (Aggregate, error) {
	return aggregate(records,
		func(r models.NumericRecord) models.SentimentLabel { return r.Sentiment },
		func(r models.NumericRecord) float64 { return r.NumericValue })
}

// AggregateText averages the polarities.
func AggregateText(records []models.TextRecord) (Aggregate, error) {
	return aggregate(records,
		func(r models.TextRecord) models.SentimentLabel { return r.Sentiment },
		func(r models.TextRecord) float64 { return r.Polarity })
}

func aggregate[T any](records []T, label func(T) models.SentimentLabel, value func(T) float64) (Aggregate, error) {
	if len(records) == 0 {
		return Aggregate{}, ErrEmptyDataset
	}

	counts := make(map[models.SentimentLabel]int, len(models.Labels))
	for _, l := range models.Labels {
		counts[l] = 0
	}

	values := make([]float64, len(records))
	for i, r := range records {
		counts[label(r)]++
		values[i] = value(r)
	}

	total := len(records)
	pcts := make(map[models.SentimentLabel]float64, len(counts))
	for l, n := range counts {
		pcts[l] = 100 * float64(n) / float64(total)
	}

	return Aggregate{
		Distribution: models.Distribution{
			Total:       total,
			Counts:      counts,
			Percentages: pcts,
		},
		Mean: numeric.Mean(values),
	}, nil
}
