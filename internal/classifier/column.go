// Package classifier decides whether a survey column holds numbers,
// percentages, or free text.
package classifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/spacesedan/surveyflow/internal/models"
)

const (
	PERCENT_SHARE_THRESHOLD = 0.8
	PARSED_SHARE_THRESHOLD  = 0.8
)

// Classify tags a column with its kind. Values that fail to parse are kept as
// NaN in the series and only lower the parsed share; they never fail the call.
// An empty column is Text.
func Classify(name string, values []models.Value) models.ClassifiedColumn {
	col := models.ClassifiedColumn{
		Name:   name,
		Kind:   models.KindText,
		Values: append([]models.Value(nil), values...),
	}
	if len(values) == 0 {
		return col
	}

	kind := models.KindNumeric
	parse := parseNumber
	if share(values, hasPercent) > PERCENT_SHARE_THRESHOLD {
		kind = models.KindPercentage
		parse = parsePercent
	}

	series := make([]float64, len(values))
	parsed := 0
	for i, v := range values {
		series[i] = parse(v)
		if !math.IsNaN(series[i]) {
			parsed++
		}
	}

	if float64(parsed)/float64(len(values)) > PARSED_SHARE_THRESHOLD {
		col.Kind = kind
		col.Series = series
	}
	return col
}

func share(values []models.Value, pred func(models.Value) bool) float64 {
	n := 0
	for _, v := range values {
		if pred(v) {
			n++
		}
	}
	return float64(n) / float64(len(values))
}

func hasPercent(v models.Value) bool {
	return strings.Contains(v.String(), "%")
}

func parseNumber(v models.Value) float64 {
	if v.IsMissing() {
		return math.NaN()
	}
	if n, ok := v.Number(); ok {
		return finiteOrNaN(n)
	}
	return parseFloat(v.String())
}

func parsePercent(v models.Value) float64 {
	if v.IsMissing() {
		return math.NaN()
	}
	s := strings.TrimRight(strings.TrimSpace(v.String()), "%")
	return parseFloat(s) / 100
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return finiteOrNaN(f)
}

func finiteOrNaN(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
