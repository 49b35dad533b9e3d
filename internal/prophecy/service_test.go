package prophecy

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/comparison"
	"github.com/zapponejosh/prophecy-cycles/internal/tradition"
)

func testService(t *testing.T) *Service {
	t.Helper()

	svc, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return svc
}

func TestService_FindCyclesAtYear(t *testing.T) {
	svc := testService(t)

	for _, year := range []int{538, 1798} {
		found := false
		for _, c := range svc.FindCyclesAtYear(year) {
			if c.ID == "historicist-1260" {
				found = true
			}
		}
		if !found {
			t.Errorf("FindCyclesAtYear(%d) does not include historicist-1260", year)
		}
	}

	if got := svc.FindCyclesAtYear(1); got == nil || len(got) != 0 {
		t.Errorf("FindCyclesAtYear(1) = %v, want empty non-nil slice", got)
	}
}

func TestService_FilterCyclesByTraditions(t *testing.T) {
	svc := testService(t)

	if got := svc.FilterCyclesByTraditions(nil); len(got) != 0 {
		t.Errorf("FilterCyclesByTraditions(nil) = %d cycles, want 0", len(got))
	}
	if got := svc.FilterCyclesByTraditions([]string{}); len(got) != 0 {
		t.Errorf("FilterCyclesByTraditions([]) = %d cycles, want 0", len(got))
	}

	var names []string
	for _, tr := range svc.AllTraditions() {
		names = append(names, tr.Name)
	}
	all := svc.FilterCyclesByTraditions(names)
	if len(all) != len(svc.AllCycles()) {
		t.Errorf("FilterCyclesByTraditions(all names) = %d cycles, want %d", len(all), len(svc.AllCycles()))
	}
}

func TestService_ComputeComparisonStats(t *testing.T) {
	svc := testService(t)

	all := svc.AllCycles()
	stats, err := svc.ComputeComparisonStats(svc.FilterCyclesByTraditions(svc.TraditionLabels()))
	if err != nil {
		t.Fatalf("ComputeComparisonStats() error = %v", err)
	}

	var maxDur float64
	for _, c := range all {
		maxDur = max(maxDur, c.Duration)
	}
	if stats.Count != len(all) {
		t.Errorf("Count = %d, want %d", stats.Count, len(all))
	}
	if stats.MaxDuration != maxDur {
		t.Errorf("MaxDuration = %v, want %v", stats.MaxDuration, maxDur)
	}

	_, err = svc.ComputeComparisonStats(nil)
	if !errors.Is(err, comparison.ErrEmptySet) {
		t.Errorf("ComputeComparisonStats(nil) error = %v, want ErrEmptySet", err)
	}
}

func TestService_TimelineEndpoints(t *testing.T) {
	svc := testService(t)

	p := svc.Timeline()
	if p.Points[0].Position != 0 {
		t.Errorf("first position = %v, want 0", p.Points[0].Position)
	}
	if p.Points[p.Len()-1].Position != 100 {
		t.Errorf("last position = %v, want 100", p.Points[p.Len()-1].Position)
	}

	events := svc.TimelineEvents()
	for i := 1; i < len(events); i++ {
		if events[i-1].Year > events[i].Year {
			t.Fatalf("TimelineEvents() not sorted at %d", i)
		}
	}
}

func TestService_ComputeTimelinePositionsRelated(t *testing.T) {
	svc := testService(t)

	p := svc.ComputeTimelinePositions([]catalog.TimelineEvent{
		{Year: 2012, Event: "Baktun turnover"},
		{Year: 538, Event: "Papal dominance"},
	})

	if p.Points[0].Event.Year != 538 {
		t.Fatalf("points not sorted: first year %d", p.Points[0].Event.Year)
	}
	related := p.RelatedCycles(1)
	var ids []string
	for _, c := range related {
		ids = append(ids, c.ID)
	}
	if diff := cmp.Diff([]string{"mayan-baktun-4", "mayan-baktun-5"}, ids); diff != "" {
		t.Errorf("RelatedCycles(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestService_ConvergenceSummary(t *testing.T) {
	svc := testService(t)

	conv := svc.ConvergenceSummary()
	if conv.Year != 2025 || len(conv.Entries) != 7 {
		t.Fatalf("ConvergenceSummary() = year %d, %d entries; want 2025, 7", conv.Year, len(conv.Entries))
	}
	for _, e := range conv.Entries {
		if e.End != conv.Year {
			t.Errorf("entry %q End = %d", e.Tradition, e.End)
		}
	}
}

func TestService_TraditionsRoundTrip(t *testing.T) {
	svc := testService(t)

	var flat []string
	for _, c := range tradition.Flatten(svc.AllTraditions()) {
		flat = append(flat, c.ID)
	}
	var all []string
	for _, c := range svc.AllCycles() {
		all = append(all, c.ID)
	}
	sort.Strings(flat)
	sort.Strings(all)

	if diff := cmp.Diff(all, flat); diff != "" {
		t.Errorf("tradition cycles are not a permutation of the catalog (-want +got):\n%s", diff)
	}
}

func TestService_AllTraditionsIsolated(t *testing.T) {
	svc := testService(t)

	first := svc.AllTraditions()
	first[0].Cycles[0].ID = "mutated"
	first[0].KeyTexts[0] = "mutated"

	again := svc.AllTraditions()
	if again[0].Cycles[0].ID == "mutated" || again[0].KeyTexts[0] == "mutated" {
		t.Error("AllTraditions() exposed the frozen snapshot")
	}
}

func TestService_FindTradition(t *testing.T) {
	svc := testService(t)

	tr, ok := svc.FindTradition("gnostic")
	if !ok {
		t.Fatal("FindTradition(gnostic) not found")
	}
	if tr.Title != "Gnostic Tradition" || tr.CycleCount() != 1 {
		t.Errorf("gnostic = %q with %d cycles", tr.Title, tr.CycleCount())
	}

	if _, ok := svc.FindTradition("missing"); ok {
		t.Error("FindTradition(missing) ok = true")
	}
}

func TestService_Compare(t *testing.T) {
	svc := testService(t)

	cmpView := svc.Compare(comparison.DefaultSelection)
	if cmpView.Empty() {
		t.Fatal("default selection matched nothing")
	}
	if cmpView.Stats.Count != len(cmpView.Bars) {
		t.Errorf("Stats.Count = %d, len(Bars) = %d", cmpView.Stats.Count, len(cmpView.Bars))
	}

	empty := svc.Compare(nil)
	if !empty.Empty() {
		t.Error("Compare(nil).Empty() = false")
	}
	if len(empty.Bars) != 0 {
		t.Errorf("Compare(nil) has %d bars", len(empty.Bars))
	}
	if empty.Selected == nil {
		t.Error("Compare(nil).Selected = nil, want empty slice")
	}
}
