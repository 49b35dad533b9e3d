// Package prophecy exposes the read operations that presentation layers
// (the HTTP API and the CLI) call into.
//
// A Service is built once at startup from a validated catalog. The tradition
// index is computed at that moment and kept as a frozen snapshot; since the
// catalog never changes after load this is the same as recomputing it.
//
// Selection state (checked traditions, the selected event, zoom) belongs to
// the caller and is passed in explicitly. No method keeps state between calls.
package prophecy

import (
	"slices"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/comparison"
	"github.com/zapponejosh/prophecy-cycles/internal/timeline"
	"github.com/zapponejosh/prophecy-cycles/internal/tradition"
)

// Service answers read queries over one catalog.
type Service struct {
	catalog    *catalog.Catalog
	traditions []tradition.Tradition
}

// New builds a Service and freezes the tradition index.
func New(c *catalog.Catalog) *Service {
	return &Service{
		catalog:    c,
		traditions: tradition.BuildIndex(c.ListCycles(), c.Traditions()),
	}
}

// Load builds a Service over the embedded catalog.
func Load() (*Service, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// AllCycles returns every cycle in authored order.
func (s *Service) AllCycles() []catalog.Cycle {
	return s.catalog.ListCycles()
}

// FindCycle looks a cycle up by id.
func (s *Service) FindCycle(id string) (catalog.Cycle, bool) {
	return s.catalog.FindByID(id)
}

// AllTraditions returns every tradition with its grouped cycles.
func (s *Service) AllTraditions() []tradition.Tradition {
	out := make([]tradition.Tradition, len(s.traditions))
	for i, t := range s.traditions {
		t.KeyTexts = slices.Clone(t.KeyTexts)
		t.Cycles = slices.Clone(t.Cycles)
		out[i] = t
	}
	return out
}

// FindTradition looks a tradition up by id.
func (s *Service) FindTradition(id string) (tradition.Tradition, bool) {
	return tradition.FindByID(s.AllTraditions(), id)
}

// TraditionLabels returns the distinct cycle tradition labels, the options
// offered by the comparison filter.
func (s *Service) TraditionLabels() []string {
	return s.catalog.TraditionLabels()
}

// TimelineEvents returns the catalog events sorted ascending by year.
func (s *Service) TimelineEvents() []catalog.TimelineEvent {
	return s.catalog.TimelineEvents()
}

// ConvergenceSummary returns the convergence year and its entries.
func (s *Service) ConvergenceSummary() catalog.Convergence {
	return s.catalog.Convergence()
}

// FindCyclesAtYear returns the cycles that start or end in year. The result
// is never nil.
func (s *Service) FindCyclesAtYear(year int) []catalog.Cycle {
	if cycles := s.catalog.FilterByYear(year); cycles != nil {
		return cycles
	}
	return []catalog.Cycle{}
}

// FilterCyclesByTraditions returns the cycles whose tradition label is in
// selected. An empty selection returns no cycles.
func (s *Service) FilterCyclesByTraditions(selected []string) []catalog.Cycle {
	return comparison.FilterByTraditions(s.catalog.ListCycles(), selected)
}

// ComputeTimelinePositions lays out arbitrary events; related cycles are
// looked up against this catalog on demand.
func (s *Service) ComputeTimelinePositions(events []catalog.TimelineEvent) timeline.Projection {
	return timeline.Project(events, s.catalog)
}

// Timeline lays out the catalog's own events.
func (s *Service) Timeline() timeline.Projection {
	return s.ComputeTimelinePositions(s.catalog.TimelineEvents())
}

// ComputeComparisonStats summarizes cycles. It returns
// comparison.ErrEmptySet when cycles is empty.
func (s *Service) ComputeComparisonStats(cycles []catalog.Cycle) (comparison.Stats, error) {
	return comparison.SummaryStats(cycles)
}

// Comparison is the full comparison view for one selection.
// Stats is nil when the selection matched nothing.
type Comparison struct {
	Selected []string          `json:"selected" yaml:"selected"`
	Bars     []comparison.Bar  `json:"bars" yaml:"bars"`
	Stats    *comparison.Stats `json:"stats" yaml:"stats"`
	Window   comparison.Window `json:"window" yaml:"window"`
	Cap      float64           `json:"duration_cap" yaml:"duration_cap"`
}

// Empty reports whether the selection matched no cycles.
func (c Comparison) Empty() bool {
	return c.Stats == nil
}

// Compare filters by selected and scales the result against the default
// duration cap and year window.
func (s *Service) Compare(selected []string) Comparison {
	cycles := s.FilterCyclesByTraditions(selected)

	out := Comparison{
		Selected: slices.Clone(selected),
		Bars:     comparison.Chart(cycles, comparison.DefaultDurationCap, comparison.DefaultWindow),
		Window:   comparison.DefaultWindow,
		Cap:      comparison.DefaultDurationCap,
	}
	if out.Selected == nil {
		out.Selected = []string{}
	}

	if stats, err := s.ComputeComparisonStats(cycles); err == nil {
		out.Stats = &stats
	}
	return out
}
