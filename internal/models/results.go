package models

// Distribution counts records per label. Percentages are 100*count/total.
type Distribution struct {
	Total       int                        `json:"total"`
	Counts      map[SentimentLabel]int     `json:"counts"`
	Percentages map[SentimentLabel]float64 `json:"percentages"`
}

func (d Distribution) Count(label SentimentLabel) int {
	return d.Counts[label]
}

func (d Distribution) Percent(label SentimentLabel) float64 {
	return d.Percentages[label]
}

type ValueCount struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// RatingStats describes the raw (unscaled) numeric series.
type RatingStats struct {
	Average     float64      `json:"average"`
	Median      float64      `json:"median"`
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	ValueCounts []ValueCount `json:"value_counts"`
}

type Summary struct {
	Band      string `json:"band"`
	Escalated bool   `json:"escalated"`
	Text      string `json:"text"`
}

type NumericResult struct {
	Column        string          `json:"column"`
	Kind          ColumnKind      `json:"kind"`
	Records       []NumericRecord `json:"records"`
	Distribution  Distribution    `json:"distribution"`
	AverageRating float64         `json:"average_rating"`
	Stats         RatingStats     `json:"stats"`
	Summary       Summary         `json:"summary"`
	Notice        string          `json:"notice"`
}

type TextResult struct {
	Column          string                      `json:"column"`
	Records         []TextRecord                `json:"records"`
	Distribution    Distribution                `json:"distribution"`
	AveragePolarity float64                     `json:"average_polarity"`
	Partition       map[SentimentLabel][]string `json:"partition"`
	Summary         Summary                     `json:"summary"`
}
