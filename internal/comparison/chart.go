package comparison

import "github.com/zapponejosh/prophecy-cycles/internal/catalog"

// Bar is one row of the comparison charts.
type Bar struct {
	Cycle    catalog.Cycle `json:"cycle" yaml:"cycle"`
	BarPct   float64       `json:"bar_pct" yaml:"bar_pct"`
	LeftPct  float64       `json:"left_pct" yaml:"left_pct"`
	RightPct float64       `json:"right_pct" yaml:"right_pct"`
	Color    string        `json:"color" yaml:"color"`
}

// Chart scales each cycle for the duration and range charts.
func Chart(cycles []catalog.Cycle, cap float64, w Window) []Bar {
	bars := make([]Bar, len(cycles))
	for i, c := range cycles {
		left, right := RangePosition(c.StartYear, c.EndYear, w)
		bars[i] = Bar{
			Cycle:    c,
			BarPct:   ScaleBar(c.Duration, cap),
			LeftPct:  left,
			RightPct: right,
			Color:    TraditionColor(c.Tradition),
		}
	}
	return bars
}

// fallbackColor is used for labels without an assigned color.
const fallbackColor = "rgba(100, 116, 139, 0.8)"

var traditionColors = map[string]string{
	"Ethiopian":   "rgba(217, 119, 6, 0.8)",
	"Qumran":      "rgba(147, 51, 234, 0.8)",
	"Christian":   "rgba(220, 38, 38, 0.8)",
	"Jewish":      "rgba(37, 99, 235, 0.8)",
	"Historicist": "rgba(34, 197, 94, 0.8)",
	"Mayan":       "rgba(5, 150, 105, 0.8)",
	"Aztec":       "rgba(234, 88, 12, 0.8)",
	"Personal":    "rgba(236, 72, 153, 0.8)",
	"Futurist":    "rgba(79, 70, 229, 0.8)",
	"Proposed":    "rgba(6, 182, 212, 0.8)",
}

// TraditionColor returns the chart color for a tradition label.
func TraditionColor(label string) string {
	if c, ok := traditionColors[label]; ok {
		return c
	}
	return fallbackColor
}
