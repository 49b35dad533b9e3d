// Package tradition groups catalog cycles under their tradition records.
package tradition

import (
	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
)

// Tradition is an authored tradition record with the cycles grouped under it.
type Tradition struct {
	catalog.TraditionRecord `yaml:",inline"`
	Cycles []catalog.Cycle `json:"cycles" yaml:"cycles"`
}

// CycleCount returns the number of grouped cycles.
func (t Tradition) CycleCount() int {
	return len(t.Cycles)
}

// BuildIndex attaches to each record the cycles whose Tradition label equals
// the record's Name, keeping catalog order.
//
// Matching is by display label, not by id: a record named "Christian" picks up
// every cycle tagged "Christian" whatever the record's id says. That grouping
// is part of the data and is kept as-is.
func BuildIndex(cycles []catalog.Cycle, records []catalog.TraditionRecord) []Tradition {
	byLabel := make(map[string][]catalog.Cycle)
	for _, c := range cycles {
		byLabel[c.Tradition] = append(byLabel[c.Tradition], c)
	}

	out := make([]Tradition, 0, len(records))
	for _, r := range records {
		matched := byLabel[r.Name]
		grouped := make([]catalog.Cycle, len(matched))
		copy(grouped, matched)

		out = append(out, Tradition{
			TraditionRecord: r,
			Cycles:          grouped,
		})
	}
	return out
}

// Flatten concatenates the cycles of every tradition in index order.
func Flatten(index []Tradition) []catalog.Cycle {
	var out []catalog.Cycle
	for _, t := range index {
		out = append(out, t.Cycles...)
	}
	return out
}

// FindByID returns the tradition with the given id.
func FindByID(index []Tradition, id string) (Tradition, bool) {
	for _, t := range index {
		if t.ID == id {
			return t, true
		}
	}
	return Tradition{}, false
}
