package renderer

import (
	"strings"

	"github.com/projectflow/projectflow"
)

// barWidth is the width of a full chart bar in characters.
const barWidth = 24

// Weekly renders the weekly time report: total hours since Sunday and a bar
// chart of the last seven days.
func Weekly(on projectflow.Date, total projectflow.Hours, series []projectflow.DayHours) string {
	b := newBuilder()
	b.Printf("# Week of %s\n\n", on.StartOf(projectflow.Weekly))
	b.Printf("Hours this week: **%s**\n\n", total)

	var max float64
	for _, d := range series {
		if h := d.Hours.AsFloat(); h > max {
			max = h
		}
	}

	b.Printf("```\n")
	for _, d := range series {
		b.Printf("%s %-3s %-*s %s\n",
			d.Date, d.Date.Weekday().String()[:3],
			barWidth, bar(d.Hours.AsFloat(), max), d.Hours)
	}
	b.Printf("```\n")
	return b.String()
}

// bar returns a text bar proportional to value/max, barWidth characters at
// full scale.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
