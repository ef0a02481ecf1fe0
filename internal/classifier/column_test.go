package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/surveyflow/internal/models"
)

func strs(ss ...string) []models.Value {
	out := make([]models.Value, len(ss))
	for i, s := range ss {
		out[i] = models.String(s)
	}
	return out
}

func TestClassify_Numeric(t *testing.T) {
	t.Parallel()

	values := []models.Value{
		models.Number(1), models.Number(2), models.String(" 5 "), models.Number(1),
		models.Number(2), models.Number(1), models.String("3"), models.Number(2),
	}
	col := Classify("work_life_balance", values)
	assert.Equal(t, models.KindNumeric, col.Kind)
	assert.Equal(t, []float64{1, 2, 5, 1, 2, 1, 3, 2}, col.Series)
}

func TestClassify_Percentage(t *testing.T) {
	t.Parallel()

	col := Classify("p", strs("80%", "45%", "12.5%", "100%", "0%"))
	require.Equal(t, models.KindPercentage, col.Kind)
	assert.InDeltaSlice(t, []float64{0.8, 0.45, 0.125, 1, 0}, col.Series, 1e-12)
}

func TestClassify_PercentageWithBadValue(t *testing.T) {
	t.Parallel()

	// 5 of 6 contain "%" (0.83 > 0.8) and 5 of 6 parse (0.83 > 0.8).
	col := Classify("p", strs("10%", "20%", "30%", "40%", "n/a%", "50"))
	require.Equal(t, models.KindPercentage, col.Kind)
	assert.True(t, math.IsNaN(col.Series[4]))
	assert.InDelta(t, 0.5, col.Series[5], 1e-12)
}

func TestClassify_PercentShareAtThresholdIsNotPercentage(t *testing.T) {
	t.Parallel()

	// exactly 0.8 contain "%", so values are parsed directly and "%" ones fail.
	col := Classify("p", strs("1%", "2%", "3%", "4%", "5"))
	assert.Equal(t, models.KindText, col.Kind)
	assert.Nil(t, col.Series)
}

func TestClassify_ParsedShareBoundary(t *testing.T) {
	t.Parallel()

	// 4 of 5 parse: 0.8 is not > 0.8.
	col := Classify("c", strs("1", "2", "3", "4", "five"))
	assert.Equal(t, models.KindText, col.Kind)

	// 5 of 6 parse: 0.83 > 0.8, failure stays NaN.
	col = Classify("c", strs("1", "2", "3", "4", "5", "six"))
	require.Equal(t, models.KindNumeric, col.Kind)
	assert.True(t, math.IsNaN(col.Series[5]))
}

func TestClassify_MissingCountsInDenominator(t *testing.T) {
	t.Parallel()

	values := []models.Value{models.Number(1), models.Number(2), models.Number(3), models.Number(4), models.Missing()}
	col := Classify("c", values)
	assert.Equal(t, models.KindText, col.Kind)
}

func TestClassify_NonFiniteIsParseFailure(t *testing.T) {
	t.Parallel()

	col := Classify("c", strs("NaN", "Inf", "1", "2", "3"))
	assert.Equal(t, models.KindText, col.Kind)
}

func TestClassify_Text(t *testing.T) {
	t.Parallel()

	col := Classify("text", strs("I love my job", "I hate my job"))
	assert.Equal(t, models.KindText, col.Kind)
	assert.Len(t, col.Values, 2)
}

func TestClassify_EmptyIsText(t *testing.T) {
	t.Parallel()

	col := Classify("empty", nil)
	assert.Equal(t, models.KindText, col.Kind)
	assert.Empty(t, col.Values)
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()

	values := strs("1", "2", "x", "4", "5", "6")
	a := Classify("c", values)
	b := Classify("c", values)
	assert.Equal(t, a.Kind, b.Kind)
	require.Len(t, b.Series, len(a.Series))
	for i := range a.Series {
		if math.IsNaN(a.Series[i]) {
			assert.True(t, math.IsNaN(b.Series[i]))
			continue
		}
		assert.Equal(t, a.Series[i], b.Series[i])
	}
}
