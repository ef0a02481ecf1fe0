package models

// SentimentLabel is the three-way bucket every scored record lands in.
type SentimentLabel string

const (
	Positive SentimentLabel = "Positive"
	Neutral  SentimentLabel = "Neutral"
	Negative SentimentLabel = "Negative"
)

// Labels lists every label in display order.
var Labels = []SentimentLabel{Positive, Neutral, Negative}

type ColumnKind string

const (
	KindNumeric    ColumnKind = "numeric"
	KindPercentage ColumnKind = "percentage"
	KindText       ColumnKind = "text"
)

// IsNumeric is true for both numeric and percentage columns.
func (k ColumnKind) IsNumeric() bool {
	return k == KindNumeric || k == KindPercentage
}

// ClassifiedColumn is the selected column tagged with its kind. Series is only
// populated for numeric kinds, aligned with Values; NaN marks a parse failure.
type ClassifiedColumn struct {
	Name   string
	Kind   ColumnKind
	Values []Value
	Series []float64
}

type NumericRecord struct {
	Index        int            `json:"index"`
	NumericValue float64        `json:"numeric_value"`
	ScaledValue  float64        `json:"scaled_value"`
	Sentiment    SentimentLabel `json:"sentiment"`
}

type TextRecord struct {
	Index     int            `json:"index"`
	Text      string         `json:"text"`
	Polarity  float64        `json:"polarity"`
	Sentiment SentimentLabel `json:"sentiment"`
}
