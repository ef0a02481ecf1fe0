// Package numeric rescales rating columns to [-1, 1] and buckets them.
package numeric

import (
	"math"
	"sort"

	"github.com/spacesedan/surveyflow/internal/models"
)

const (
	NEGATIVE_CEILING = -0.1
	NEUTRAL_CEILING  = 0.1
)

// Label buckets a scaled value. Both ceilings are inclusive.
func Label(scaled float64) models.SentimentLabel {
	switch {
	case scaled <= NEGATIVE_CEILING:
		return models.Negative
	case scaled <= NEUTRAL_CEILING:
		return models.Neutral
	default:
		return models.Positive
	}
}

// Scale maps x from [lo, hi] onto [-1, 1]. A zero-width range maps to 0.
// Halving first keeps hi-lo finite for any finite bounds.
func Scale(x, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return -1 + 2*((x/2-lo/2)/(hi/2-lo/2))
}

// Mean is the arithmetic mean of values, 0 for none. Sums that overflow
// are redone on pre-divided values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := float64(len(values))
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if !math.IsInf(sum, 0) {
		return sum / n
	}
	mean := 0.0
	for _, v := range values {
		mean += v / n
	}
	return mean
}

// Bounds returns the min and max of the non-NaN values. ok is false when
// there are none.
func Bounds(series []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range series {
		if math.IsNaN(x) {
			continue
		}
		ok = true
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi, ok
}

// Normalize scores every parsed value in the series. NaN entries are dropped;
// Index keeps each record's position in the source column.
func Normalize(series []float64) []models.NumericRecord {
	lo, hi, ok := Bounds(series)
	if !ok {
		return nil
	}

	records := make([]models.NumericRecord, 0, len(series))
	for i, x := range series {
		if math.IsNaN(x) {
			continue
		}
		scaled := Scale(x, lo, hi)
		records = append(records, models.NumericRecord{
			Index:        i,
			NumericValue: x,
			ScaledValue:  scaled,
			Sentiment:    Label(scaled),
		})
	}
	return records
}

// Describe summarizes the raw values of already-normalized records.
func Describe(records []models.NumericRecord) models.RatingStats {
	if len(records) == 0 {
		return models.RatingStats{}
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.NumericValue
	}
	sort.Float64s(values)

	stats := models.RatingStats{
		Average: Mean(values),
		Min:     values[0],
		Max:     values[len(values)-1],
	}

	mid := len(values) / 2
	if len(values)%2 == 0 {
		stats.Median = Mean(values[mid-1 : mid+1])
	} else {
		stats.Median = values[mid]
	}

	for _, v := range values {
		n := len(stats.ValueCounts)
		if n > 0 && stats.ValueCounts[n-1].Value == v {
			stats.ValueCounts[n-1].Count++
			continue
		}
		stats.ValueCounts = append(stats.ValueCounts, models.ValueCount{Value: v, Count: 1})
	}

	return stats
}
