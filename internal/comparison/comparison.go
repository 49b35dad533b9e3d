// Package comparison filters cycles by tradition and scales them for
// side-by-side duration and range charts.
package comparison

import (
	"errors"
	"math"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
)

// ErrEmptySet is returned by SummaryStats when no cycles are selected.
var ErrEmptySet = errors.New("no cycles selected")

// DefaultDurationCap is the duration, in years, that fills a bar completely.
const DefaultDurationCap = 5000

// Window is the fixed year axis that range bars are laid out against.
type Window struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Span returns Max - Min.
func (w Window) Span() int {
	return w.Max - w.Min
}

// DefaultWindow covers the earliest catalog start (2100 BCE) out past the
// latest authored end year.
var DefaultWindow = Window{Min: -2100, Max: 3300}

// DefaultSelection is the tradition set checked when the comparison view opens.
var DefaultSelection = []string{"Ethiopian", "Qumran", "Christian", "Mayan", "Aztec", "Personal"}

// Stats summarizes a selection of cycles.
type Stats struct {
	Count        int     `json:"count" yaml:"count"`
	MaxDuration  float64 `json:"max_duration" yaml:"max_duration"`
	MeanDuration float64 `json:"mean_duration" yaml:"mean_duration"`
}

// RoundedMean returns MeanDuration rounded half away from zero.
func (s Stats) RoundedMean() int64 {
	return int64(math.Round(s.MeanDuration))
}

// FilterByTraditions keeps cycles whose Tradition label is in selected,
// preserving input order. An empty selection keeps nothing.
func FilterByTraditions(cycles []catalog.Cycle, selected []string) []catalog.Cycle {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}

	out := make([]catalog.Cycle, 0, len(cycles))
	for _, c := range cycles {
		if _, ok := set[c.Tradition]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ScaleBar returns duration as a percentage of cap, clamped to [0, 100].
// Durations above cap saturate at 100 rather than rescaling the chart.
// A non-positive cap yields 0.
func ScaleBar(duration, cap float64) float64 {
	if cap <= 0 {
		return 0
	}
	return min(max(duration/cap*100, 0), 100)
}

// RangePosition returns the left and right insets, in percent of the window
// span, for a bar covering [start, end]. left grows with start; right grows
// as end moves away from the window's upper edge. Both are floored at 0.
func RangePosition(start, end int, w Window) (left, right float64) {
	span := float64(w.Span())
	if span <= 0 {
		return 0, 0
	}
	left = max(0, float64(start-w.Min)/span*100)
	right = max(0, float64(w.Max-end)/span*100)
	return left, right
}

// SummaryStats returns count, max and mean duration over cycles.
// It returns ErrEmptySet for an empty input instead of dividing by zero.
func SummaryStats(cycles []catalog.Cycle) (Stats, error) {
	if len(cycles) == 0 {
		return Stats{}, ErrEmptySet
	}

	s := Stats{Count: len(cycles), MaxDuration: cycles[0].Duration}
	var sum float64
	for _, c := range cycles {
		sum += c.Duration
		s.MaxDuration = max(s.MaxDuration, c.Duration)
	}
	s.MeanDuration = sum / float64(len(cycles))
	return s, nil
}
