package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/surveyflow/internal/analysis"
	"github.com/spacesedan/surveyflow/internal/models"
	"github.com/spacesedan/surveyflow/internal/sentiment"
)

func testAnalyzer() *analysis.Analyzer {
	return analysis.NewAnalyzer(sentiment.ScorerFunc(func(_ context.Context, text string) (float64, error) {
		switch text {
		case "I love my job":
			return 0.5, nil
		case "I hate my job":
			return -0.5, nil
		}
		return 0, nil
	}), 2)
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(flag.NewFlagSet("analyzer", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, SourcePre, cfg.Source)
	assert.False(t, cfg.JSON)
}

func TestParseFlags_Validation(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"-source", "csv"},
		{"-source", "manual"},
		{"-source", "xls"},
	}
	for _, args := range cases {
		_, err := parseFlags(flag.NewFlagSet("analyzer", flag.ContinueOnError), args)
		assert.Error(t, err, "args=%v", args)
	}
}

func TestRun_ManualText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := Config{Source: SourceManual, Input: "-"}
	err := run(context.Background(), cfg, testAnalyzer(), strings.NewReader("I love my job\nI hate my job\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "- Sentiment Breakdown: {'Positive': 1, 'Negative': 1}")
	assert.Contains(t, out.String(), "Neutral sentiment suggests mixed experiences.")
}

func TestRun_SampleNumericJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := Config{Source: SourcePre, Column: "work_life_balance", JSON: true}
	require.NoError(t, run(context.Background(), cfg, testAnalyzer(), nil, &out))

	var res analysis.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, models.KindNumeric, res.Kind)
	require.NotNil(t, res.Numeric)
	assert.Equal(t, 2.5, res.Numeric.AverageRating)
	assert.Equal(t, "Below average", res.Numeric.Summary.Band)
}

func TestRun_CSVColumnNotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte("rating\n1\n2\n"), 0o600))

	cfg := Config{Source: SourceCSV, File: path, Column: "comments"}
	err := run(context.Background(), cfg, testAnalyzer(), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, analysis.ErrColumnNotFound)
}

func TestRun_DefaultsToFirstColumn(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), Config{Source: SourcePre}, testAnalyzer(), nil, &out))
	assert.Contains(t, out.String(), "- Sentiment Breakdown:")
}
