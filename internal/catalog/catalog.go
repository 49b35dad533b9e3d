package catalog

import (
	"cmp"
	"fmt"
	"slices"
)

// Catalog is the immutable set of cycles, tradition records, timeline events
// and the convergence summary. Every accessor returns fresh slices, so a
// Catalog is safe to share between goroutines.
type Catalog struct {
	cycles      []Cycle
	byID        map[string]int
	traditions  []TraditionRecord
	events      []TimelineEvent
	convergence Convergence
}

// Load builds the catalog from the embedded dataset.
// An error here means the embedded data is broken; callers should exit.
func Load() (*Catalog, error) {
	return New(builtinDataset())
}

// MustLoad is like Load but panics on an integrity violation.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// New validates ds and builds a Catalog from a private copy of it.
// Timeline events are stored sorted by year; ties keep authored order.
func New(ds Dataset) (*Catalog, error) {
	if err := Validate(ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrity, err)
	}

	c := &Catalog{
		cycles:      cloneCycles(ds.Cycles),
		byID:        make(map[string]int, len(ds.Cycles)),
		traditions:  cloneTraditions(ds.Traditions),
		events:      slices.Clone(ds.Events),
		convergence: cloneConvergence(ds.Convergence),
	}

	for i, cy := range c.cycles {
		c.byID[cy.ID] = i
	}

	slices.SortStableFunc(c.events, func(a, b TimelineEvent) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return c, nil
}

// ListCycles returns every cycle in authored order.
func (c *Catalog) ListCycles() []Cycle {
	return cloneCycles(c.cycles)
}

// FindByID returns the cycle with the given id. A missing id is not an
// error; ok is false.
func (c *Catalog) FindByID(id string) (Cycle, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Cycle{}, false
	}
	return cloneCycle(c.cycles[i]), true
}

// FilterByYear returns every cycle that starts or ends in year, in authored
// order. The result may be empty.
func (c *Catalog) FilterByYear(year int) []Cycle {
	var out []Cycle
	for _, cy := range c.cycles {
		if cy.Contains(year) {
			out = append(out, cloneCycle(cy))
		}
	}
	return out
}

// Len returns the number of cycles.
func (c *Catalog) Len() int {
	return len(c.cycles)
}

// Traditions returns the authored tradition records in authored order.
func (c *Catalog) Traditions() []TraditionRecord {
	return cloneTraditions(c.traditions)
}

// TimelineEvents returns the timeline events sorted ascending by year.
func (c *Catalog) TimelineEvents() []TimelineEvent {
	return slices.Clone(c.events)
}

// Convergence returns the convergence summary.
func (c *Catalog) Convergence() Convergence {
	return cloneConvergence(c.convergence)
}

// TraditionLabels returns the distinct cycle tradition labels in the order
// they first appear.
func (c *Catalog) TraditionLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, cy := range c.cycles {
		if seen[cy.Tradition] {
			continue
		}
		seen[cy.Tradition] = true
		labels = append(labels, cy.Tradition)
	}
	return labels
}

func cloneCycle(c Cycle) Cycle {
	c.References = slices.Clone(c.References)
	return c
}

func cloneCycles(in []Cycle) []Cycle {
	if in == nil {
		return nil
	}
	out := make([]Cycle, len(in))
	for i, c := range in {
		out[i] = cloneCycle(c)
	}
	return out
}

func cloneTraditions(in []TraditionRecord) []TraditionRecord {
	if in == nil {
		return nil
	}
	out := make([]TraditionRecord, len(in))
	for i, t := range in {
		t.KeyTexts = slices.Clone(t.KeyTexts)
		out[i] = t
	}
	return out
}

func cloneConvergence(c Convergence) Convergence {
	c.Entries = slices.Clone(c.Entries)
	return c
}
