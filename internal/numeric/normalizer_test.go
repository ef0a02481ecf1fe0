package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/surveyflow/internal/models"
)

func TestLabel_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scaled float64
		want   models.SentimentLabel
	}{
		{-1, models.Negative},
		{-0.1, models.Negative},
		{-0.0999, models.Neutral},
		{0, models.Neutral},
		{0.1, models.Neutral},
		{0.1001, models.Positive},
		{1, models.Positive},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Label(c.scaled), "scaled=%v", c.scaled)
	}
}

func TestNormalize_RatingScale(t *testing.T) {
	t.Parallel()

	series := []float64{1, 2, 5, 1, 2, 1, 3, 2}
	want := []models.SentimentLabel{
		models.Negative, models.Negative, models.Positive, models.Negative,
		models.Negative, models.Negative, models.Neutral, models.Negative,
	}

	for run := 0; run < 3; run++ {
		records := Normalize(series)
		require.Len(t, records, len(series))
		for i, r := range records {
			assert.Equal(t, i, r.Index)
			assert.Equal(t, series[i], r.NumericValue)
			assert.Equal(t, want[i], r.Sentiment, "record %d", i)
			assert.GreaterOrEqual(t, r.ScaledValue, -1.0)
			assert.LessOrEqual(t, r.ScaledValue, 1.0)
		}
		assert.Equal(t, -1.0, records[0].ScaledValue)
		assert.Equal(t, 1.0, records[2].ScaledValue)
		assert.Equal(t, 0.0, records[6].ScaledValue)
	}
}

func TestNormalize_ZeroVariance(t *testing.T) {
	t.Parallel()

	records := Normalize([]float64{3, 3, 3, 3})
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, 0.0, r.ScaledValue)
		assert.Equal(t, models.Neutral, r.Sentiment)
	}
}

func TestNormalize_SkipsMissing(t *testing.T) {
	t.Parallel()

	records := Normalize([]float64{1, math.NaN(), 5})
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Index)
	assert.Equal(t, 2, records[1].Index)
	assert.Equal(t, -1.0, records[0].ScaledValue)
	assert.Equal(t, 1.0, records[1].ScaledValue)

	assert.Nil(t, Normalize([]float64{math.NaN()}))
	assert.Nil(t, Normalize(nil))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	stats := Describe(Normalize([]float64{4, 2, 5, 1, 2, 1, 3, 2}))
	assert.Equal(t, 2.5, stats.Average)
	assert.Equal(t, 2.0, stats.Median)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 5.0, stats.Max)
	assert.Equal(t, []models.ValueCount{
		{Value: 1, Count: 2}, {Value: 2, Count: 3}, {Value: 3, Count: 1},
		{Value: 4, Count: 1}, {Value: 5, Count: 1},
	}, stats.ValueCounts)

	odd := Describe(Normalize([]float64{3, 1, 2}))
	assert.Equal(t, 2.0, odd.Median)

	assert.Equal(t, models.RatingStats{}, Describe(nil))
}

func TestNormalize_ExtremeRange(t *testing.T) {
	t.Parallel()

	records := Normalize([]float64{-1e308, 0, 1e308})
	require.Len(t, records, 3)

	want := []struct {
		scaled float64
		label  models.SentimentLabel
	}{
		{-1, models.Negative},
		{0, models.Neutral},
		{1, models.Positive},
	}
	for i, w := range want {
		assert.Equal(t, w.scaled, records[i].ScaledValue, "record %d", i)
		assert.Equal(t, w.label, records[i].Sentiment, "record %d", i)
	}

	stats := Describe(records)
	assert.Equal(t, 0.0, stats.Average)
	assert.Equal(t, 0.0, stats.Median)
}

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.125, Mean([]float64{1, 2, 5, 1, 2, 1, 3, 2}))
	assert.Equal(t, 1e308, Mean([]float64{1e308, 1e308}))
	assert.False(t, math.IsInf(Mean([]float64{math.MaxFloat64, math.MaxFloat64, 0}), 0))
}
