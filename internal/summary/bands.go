package summary

import "math"

// Band is one narrative block, chosen when the score is >= Lower. Tables are
// ordered from the highest Lower down and end with a -Inf catch-all.
type Band struct {
	Lower float64
	Name  string
	Body  string
}

var NumericBands = []Band{
	{
		Lower: 4.5,
		Name:  "Excellent",
		Body: "Excellent overall sentiment regarding work-life balance. Employees feel highly supported and balanced.\n\n" +
			"Recommendations:\n" +
			"- Maintain current work-life balance initiatives.\n\n" +
			"- Continue regular employee satisfaction checks.",
	},
	{
		Lower: 4.0,
		Name:  "Very good",
		Body: "Very good sentiment overall, with employees generally satisfied.\n\n" +
			"Recommendations:\n" +
			"- Gather feedback to pinpoint minor improvements.\n" +
			"- Keep open communication channels.",
	},
	{
		Lower: 3.5,
		Name:  "Good",
		Body: "Good sentiment overall, though some areas need improvement.\n\n" +
			"Recommendations:\n" +
			"- Investigate causes behind neutral/negative responses.\n" +
			"- Offer more flexible scheduling options.",
	},
	{
		Lower: 3.0,
		Name:  "Moderate",
		Body: "Moderate sentiment indicates mixed experiences among employees.\n\n" +
			"Recommendations:\n" +
			"- Introduce structured work-life balance programs (e.g., wellness initiatives).\n" +
			"- Increase flexibility and clarity on available support.",
	},
	{
		Lower: 2.5,
		Name:  "Below average",
		Body: "Below average sentiment suggests significant concerns with work-life balance.\n\n" +
			"Recommendations:\n" +
			"- Conduct surveys to identify stressors.\n" +
			"- Implement flexible hours, mental health days, and stress management workshops.",
	},
	{
		Lower: math.Inf(-1),
		Name:  "Poor",
		Body: "Poor sentiment demonstrates severe dissatisfaction.\n\n" +
			"Immediate Recommendations:\n" +
			"- Hold urgent employee forums to discuss pain points.\n" +
			"- Develop comprehensive policies with substantial flexibility and wellness support.",
	},
}

var TextBands = []Band{
	{
		Lower: 0.5,
		Name:  "Highly positive",
		Body: "Highly positive sentiment indicates employees feel very supported.\n\n" +
			"Recommendations:\n" +
			"- Maintain current positive practices and gather regular feedback.",
	},
	{
		Lower: 0.2,
		Name:  "Overall positive",
		Body: "Overall positive sentiment with minor issues.\n\n" +
			"Recommendations:\n" +
			"- Explore common neutral/negative themes and improve flexibility or wellness programs.",
	},
	{
		Lower: 0.0,
		Name:  "Neutral",
		Body: "Neutral sentiment suggests mixed experiences.\n\n" +
			"Recommendations:\n" +
			"- Increase dialogue and introduce clear flexible working and wellness policies.",
	},
	{
		Lower: -0.2,
		Name:  "Negative",
		Body: "Negative sentiment indicates growing dissatisfaction.\n\n" +
			"Recommendations:\n" +
			"- Conduct detailed feedback sessions and prioritize flexible schedules and mental health resources.",
	},
	{
		Lower: math.Inf(-1),
		Name:  "Very negative",
		Body: "Very negative sentiment highlights critical issues.\n\n" +
			"Urgent Recommendations:\n" +
			"- Immediately address employee concerns with comprehensive changes and increased support.",
	},
}

// SelectBand returns the first band whose Lower the score reaches. Scores
// that reach none (NaN) get the last band.
func SelectBand(bands []Band, score float64) Band {
	for _, b := range bands {
		if score >= b.Lower {
			return b
		}
	}
	return bands[len(bands)-1]
}
