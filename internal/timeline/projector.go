// Package timeline lays dated events out along a normalized percentage axis.
package timeline

import (
	"cmp"
	"slices"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
)

// CycleFinder looks up cycles with a boundary in a given year.
// *catalog.Catalog satisfies it.
type CycleFinder interface {
	FilterByYear(year int) []catalog.Cycle
}

// Point is an event and its offset along the axis, in [0, 100].
type Point struct {
	Event    catalog.TimelineEvent `json:"event" yaml:"event"`
	Position float64               `json:"position_pct" yaml:"position_pct"`
}

// Projection is the laid-out timeline.
//
// Degenerate is set when every event shares one year; all points then sit
// at position 0.
type Projection struct {
	Points     []Point `json:"points" yaml:"points"`
	MinYear    int     `json:"min_year" yaml:"min_year"`
	MaxYear    int     `json:"max_year" yaml:"max_year"`
	Degenerate bool    `json:"degenerate" yaml:"degenerate"`

	finder CycleFinder
}

// Project sorts events by year (stable), then maps each year to
// (year-min)/(max-min)*100. The input slice is not modified.
func Project(events []catalog.TimelineEvent, finder CycleFinder) Projection {
	p := Projection{finder: finder}
	if len(events) == 0 {
		return p
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b catalog.TimelineEvent) int {
		return cmp.Compare(a.Year, b.Year)
	})

	p.MinYear = sorted[0].Year
	p.MaxYear = sorted[len(sorted)-1].Year
	p.Degenerate = p.MinYear == p.MaxYear

	p.Points = make([]Point, len(sorted))
	for i, e := range sorted {
		p.Points[i] = Point{Event: e, Position: p.PositionOf(e.Year)}
	}
	return p
}

// Len returns the number of points.
func (p Projection) Len() int {
	return len(p.Points)
}

// Range returns MaxYear - MinYear. It is computed in float64 so that
// extreme years cannot overflow.
func (p Projection) Range() float64 {
	return float64(p.MaxYear) - float64(p.MinYear)
}

// PositionOf maps any year onto the projection's axis. Years outside
// [MinYear, MaxYear] fall outside [0, 100]. A degenerate projection maps
// every year to 0.
func (p Projection) PositionOf(year int) float64 {
	span := p.Range()
	if span == 0 {
		return 0
	}
	return (float64(year) - float64(p.MinYear)) / span * 100
}

// RelatedCycles returns the cycles that start or end in the year of point i.
// The lookup runs on every call; nothing is cached. An out-of-range index or a
// projection built without a finder yields nil.
func (p Projection) RelatedCycles(i int) []catalog.Cycle {
	if p.finder == nil || i < 0 || i >= len(p.Points) {
		return nil
	}
	return p.finder.FilterByYear(p.Points[i].Event.Year)
}
