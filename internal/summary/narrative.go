// Package summary turns aggregate survey statistics into a fixed-template
// narrative with recommendations. Output depends only on the input.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spacesedan/surveyflow/internal/models"
)

const (
	ESCALATION_THRESHOLD = 30.0

	header = "Work-Life Balance Analysis:\n"

	numericEscalation = "\n\nNote: A high proportion of negative responses indicates widespread dissatisfaction that should be urgently addressed."
	textEscalation    = "\n\nNote: Over 30% negative responses indicate deep-rooted dissatisfaction that must be addressed promptly."
)

type NumericInput struct {
	PositivePct   float64
	NeutralPct    float64
	NegativePct   float64
	AverageRating float64
}

type TextInput struct {
	Counts          map[models.SentimentLabel]int
	AveragePolarity float64
	// Order is the order labels first appeared in the records; it breaks
	// count ties in the breakdown. Nil means Positive, Neutral, Negative.
	Order []models.SentimentLabel
}

// Escalates reports whether a negative share calls for the escalation note.
func Escalates(negativePct float64) bool {
	return negativePct > ESCALATION_THRESHOLD
}

// NegativeShare is 100*negative/total, or 0 when there are no counts.
func NegativeShare(counts map[models.SentimentLabel]int) float64 {
	total := 0
	for _, label := range models.Labels {
		total += counts[label]
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(counts[models.Negative]) / float64(total)
}

func Numeric(in NumericInput) models.Summary {
	var sb strings.Builder
	sb.WriteString(header)
	fmt.Fprintf(&sb, "- Positive Responses: %.1f%%\n", in.PositivePct)
	fmt.Fprintf(&sb, "- Neutral Responses: %.1f%%\n", in.NeutralPct)
	fmt.Fprintf(&sb, "- Negative Responses: %.1f%%\n", in.NegativePct)
	fmt.Fprintf(&sb, "- Average Score: %.2f/5\n\n", in.AverageRating)

	band := SelectBand(NumericBands, in.AverageRating)
	sb.WriteString(band.Body)

	escalated := Escalates(in.NegativePct)
	if escalated {
		sb.WriteString(numericEscalation)
	}

	return models.Summary{Band: band.Name, Escalated: escalated, Text: sb.String()}
}

func Text(in TextInput) models.Summary {
	var sb strings.Builder
	sb.WriteString(header)
	fmt.Fprintf(&sb, "- Sentiment Breakdown: %s\n", FormatCounts(in.Counts, in.Order))
	fmt.Fprintf(&sb, "- Average Sentiment Polarity: %.2f\n\n", in.AveragePolarity)

	band := SelectBand(TextBands, in.AveragePolarity)
	sb.WriteString(band.Body)

	escalated := Escalates(NegativeShare(in.Counts))
	if escalated {
		sb.WriteString(textEscalation)
	}

	return models.Summary{Band: band.Name, Escalated: escalated, Text: sb.String()}
}

// FormatCounts renders counts as {'Positive': 5, 'Negative': 3}: labels with
// no records are left out, larger counts come first, ties keep the order in
// which labels first appeared. Labels missing from order follow it.
func FormatCounts(counts map[models.SentimentLabel]int, order []models.SentimentLabel) string {
	labels := make([]models.SentimentLabel, 0, len(models.Labels))
	seen := make(map[models.SentimentLabel]bool, len(models.Labels))
	for _, label := range append(append([]models.SentimentLabel(nil), order...), models.Labels...) {
		if seen[label] || counts[label] <= 0 {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("'%s': %d", label, counts[label])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
