// Package loader builds in-memory tables from CSV files, pasted text, or the
// bundled sample survey.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/surveyflow/internal/models"
)

const MANUAL_COLUMN = "text"

var ErrNoInput = errors.New("no input provided")

// ReadCSV reads a header row followed by records. Empty cells are Missing;
// everything else stays a string for the classifier to interpret.
func ReadCSV(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var records []models.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		rec := make(models.Record, len(header))
		for i, col := range header {
			if row[i] == "" {
				rec[col] = models.Missing()
				continue
			}
			rec[col] = models.String(row[i])
		}
		records = append(records, rec)
	}

	return models.NewTable(header, records)
}

func LoadCSVFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	tbl, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("[Loader] CSV data loaded",
		slog.String("file", path),
		slog.Int("records", tbl.Len()))
	return tbl, nil
}

// FromLines makes one record per non-blank line in a single "text" column.
func FromLines(input string) (*models.Table, error) {
	var records []models.Record
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, models.Record{MANUAL_COLUMN: models.String(line)})
	}
	if len(records) == 0 {
		return nil, ErrNoInput
	}
	return models.NewTable([]string{MANUAL_COLUMN}, records)
}

// Sample is the pre-imported demo survey.
func Sample() *models.Table {
	reviews := []string{
		"I love working here!",
		"This job is terrible, I hate it",
		"It's not too bad working here, but it could be better",
		"Absolutely fantastic working here!",
		"Worst job ever!",
		"I love my job",
		"My boss is wonderful and makes my job easier",
		"The best place to work",
	}
	balance := []float64{4, 2, 5, 1, 2, 1, 3, 2}

	records := make([]models.Record, len(reviews))
	for i := range reviews {
		records[i] = models.Record{
			"text_reviews":      models.String(reviews[i]),
			"work_life_balance": models.Number(balance[i]),
		}
	}

	tbl, err := models.NewTable([]string{"text_reviews", "work_life_balance"}, records)
	if err != nil {
		panic(err)
	}
	return tbl
}
