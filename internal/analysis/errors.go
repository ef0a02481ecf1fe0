package analysis

import "errors"

var (
	// ErrColumnNotFound means the selected column is not in the table.
	ErrColumnNotFound = errors.New("selected column not found")
	// ErrEmptyDataset means there were no records left to aggregate.
	ErrEmptyDataset = errors.New("no data to analyze")
)
