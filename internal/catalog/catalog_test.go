package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

func cycleIDs(cycles []Cycle) []string {
	ids := make([]string, len(cycles))
	for i, c := range cycles {
		ids[i] = c.ID
	}
	return ids
}

// -----------------------------------------------------------------
// Embedded dataset invariants
// -----------------------------------------------------------------

func TestCycles_YearRangeAndDuration(t *testing.T) {
	c := testCatalog(t)

	for _, cy := range c.ListCycles() {
		if cy.StartYear > cy.EndYear {
			t.Errorf("%s: StartYear %d > EndYear %d", cy.ID, cy.StartYear, cy.EndYear)
		}
		if cy.Duration <= 0 {
			t.Errorf("%s: Duration = %v, want > 0", cy.ID, cy.Duration)
		}
	}
}

func TestCycles_UniqueIDs(t *testing.T) {
	c := testCatalog(t)

	seen := make(map[string]bool)
	for _, cy := range c.ListCycles() {
		if seen[cy.ID] {
			t.Errorf("duplicate cycle id %q", cy.ID)
		}
		seen[cy.ID] = true
	}

	seen = make(map[string]bool)
	for _, tr := range c.Traditions() {
		if seen[tr.ID] {
			t.Errorf("duplicate tradition id %q", tr.ID)
		}
		seen[tr.ID] = true
	}
}

func TestCycles_EveryCycleHasTradition(t *testing.T) {
	c := testCatalog(t)

	names := make(map[string]bool)
	for _, tr := range c.Traditions() {
		names[tr.Name] = true
	}

	for _, cy := range c.ListCycles() {
		if !names[cy.Tradition] {
			t.Errorf("cycle %q has tradition %q with no matching record", cy.ID, cy.Tradition)
		}
	}
}

func TestTraditions_KeyTexts(t *testing.T) {
	c := testCatalog(t)

	for _, tr := range c.Traditions() {
		if len(tr.KeyTexts) == 0 {
			t.Errorf("tradition %q has no key texts", tr.ID)
		}
	}
}

func TestCycles_KnownRecords(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		id       string
		start    int
		end      int
		duration float64
	}{
		{"historicist-1260", 538, 1798, 1260},
		{"rey-capitan-cycle", 1991, 2025, 34},
		{"millennial-1260", 2025, 3285, 1260},
		{"mayan-baktun-4", 1295, 2012, 717},
		{"mayan-baktun-5", 2012, 3517, 1505},
		{"enoch-70-gen", -2100, 2025, 4125},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cy, ok := c.FindByID(tt.id)
			if !ok {
				t.Fatalf("FindByID(%q) not found", tt.id)
			}
			if cy.StartYear != tt.start || cy.EndYear != tt.end || cy.Duration != tt.duration {
				t.Errorf("got %d..%d (%v), want %d..%d (%v)",
					cy.StartYear, cy.EndYear, cy.Duration, tt.start, tt.end, tt.duration)
			}
		})
	}
}

func TestCycles_DurationOverride(t *testing.T) {
	c := testCatalog(t)

	cy, ok := c.FindByID("futurist-1260")
	if !ok {
		t.Fatal("futurist-1260 not found")
	}
	if cy.Duration != 3.5 {
		t.Errorf("Duration = %v, want 3.5", cy.Duration)
	}
	if cy.Span() != 4 {
		t.Errorf("Span() = %d, want 4", cy.Span())
	}
}

// -----------------------------------------------------------------
// Lookups
// -----------------------------------------------------------------

func TestFindByID_Missing(t *testing.T) {
	c := testCatalog(t)

	cy, ok := c.FindByID("no-such-cycle")
	if ok {
		t.Errorf("FindByID() ok = true, want false")
	}
	if diff := cmp.Diff(Cycle{}, cy); diff != "" {
		t.Errorf("FindByID() returned non-zero cycle (-want +got):\n%s", diff)
	}
}

func TestFilterByYear(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name string
		year int
		want []string
	}{
		{
			name: "historicist start",
			year: 538,
			want: []string{"historicist-1260"},
		},
		{
			name: "historicist end",
			year: 1798,
			want: []string{"historicist-1260"},
		},
		{
			name: "baktun boundary matches end and start",
			year: 2012,
			want: []string{"mayan-baktun-4", "mayan-baktun-5"},
		},
		{
			name: "convergence year",
			year: 2025,
			want: []string{
				"enoch-70-gen", "qumran-messiah", "magdalene-cycle", "jesus-resurrection",
				"aztec-52year", "rey-capitan-cycle", "millennial-1260",
			},
		},
		{
			name: "interior year is not a boundary",
			year: 1000,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FilterByYear(tt.year)
			var ids []string
			if len(got) > 0 {
				ids = cycleIDs(got)
			}
			if diff := cmp.Diff(tt.want, ids); diff != "" {
				t.Errorf("FilterByYear(%d) mismatch (-want +got):\n%s", tt.year, diff)
			}
		})
	}
}

func TestListCycles_InsertionOrder(t *testing.T) {
	c := testCatalog(t)

	want := cycleIDs(builtinCycles())
	if diff := cmp.Diff(want, cycleIDs(c.ListCycles())); diff != "" {
		t.Errorf("ListCycles() order mismatch (-want +got):\n%s", diff)
	}
}

func TestListCycles_ReturnsCopy(t *testing.T) {
	c := testCatalog(t)

	first := c.ListCycles()
	first[0].Name = "mutated"
	first[0].References[0] = "mutated"

	again := c.ListCycles()
	if again[0].Name == "mutated" || again[0].References[0] == "mutated" {
		t.Error("ListCycles() exposed internal state")
	}
}

func TestTimelineEvents_Sorted(t *testing.T) {
	c := testCatalog(t)

	events := c.TimelineEvents()
	if len(events) < 10 {
		t.Fatalf("len(events) = %d, want >= 10", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Year > events[i].Year {
			t.Errorf("events[%d].Year = %d > events[%d].Year = %d",
				i-1, events[i-1].Year, i, events[i].Year)
		}
	}
}

func TestConvergence(t *testing.T) {
	c := testCatalog(t)

	conv := c.Convergence()
	if conv.Year != 2025 {
		t.Errorf("Year = %d, want 2025", conv.Year)
	}
	if len(conv.Entries) != 7 {
		t.Fatalf("len(Entries) = %d, want 7", len(conv.Entries))
	}
	for _, e := range conv.Entries {
		if e.End != 2025 {
			t.Errorf("entry %q End = %d, want 2025", e.Tradition, e.End)
		}
	}
}

func TestTraditionLabels(t *testing.T) {
	c := testCatalog(t)

	want := []string{
		"Ethiopian", "Qumran", "Christian Primitive", "Christian", "Historicist",
		"Futurist", "Mayan", "Aztec", "Personal", "Proposed Synthesis",
	}
	if diff := cmp.Diff(want, c.TraditionLabels()); diff != "" {
		t.Errorf("TraditionLabels() mismatch (-want +got):\n%s", diff)
	}
}

// -----------------------------------------------------------------
// Construction
// -----------------------------------------------------------------

func TestNew_SortsEventsStable(t *testing.T) {
	ds := builtinDataset()
	ds.Events = []TimelineEvent{
		{Year: 50, Event: "b"},
		{Year: 10, Event: "a"},
		{Year: 50, Event: "c"},
		{Year: -5, Event: "z"},
	}

	c, err := New(ds)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var got []string
	for _, e := range c.TimelineEvents() {
		got = append(got, e.Event)
	}
	if diff := cmp.Diff([]string{"z", "a", "b", "c"}, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}

	if ds.Events[0].Event != "b" {
		t.Error("New() reordered the caller's events")
	}
}

func TestNew_SortsExtremeYears(t *testing.T) {
	ds := builtinDataset()
	ds.Events = []TimelineEvent{
		{Year: math.MaxInt, Event: "far"},
		{Year: -10, Event: "near"},
		{Year: math.MinInt, Event: "first"},
	}

	c, err := New(ds)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var got []string
	for _, e := range c.TimelineEvents() {
		got = append(got, e.Event)
	}
	if diff := cmp.Diff([]string{"first", "near", "far"}, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_IntegrityViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantMsg string
	}{
		{
			name: "duplicate cycle id",
			mutate: func(ds *Dataset) {
				ds.Cycles[1].ID = ds.Cycles[0].ID
			},
			wantMsg: "duplicate cycle id",
		},
		{
			name: "duplicate tradition id",
			mutate: func(ds *Dataset) {
				ds.Traditions[1].ID = ds.Traditions[0].ID
			},
			wantMsg: "duplicate tradition id",
		},
		{
			name: "orphan cycle",
			mutate: func(ds *Dataset) {
				ds.Cycles[0].Tradition = "Nonexistent"
			},
			wantMsg: "orphan cycle",
		},
		{
			name: "tradition without cycles",
			mutate: func(ds *Dataset) {
				ds.Traditions = append(ds.Traditions, TraditionRecord{
					ID:           "empty",
					Name:         "Empty",
					Origin:       "nowhere",
					Description:  "no cycles",
					KeyTexts:     []string{"none"},
					Significance: "none",
				})
			},
			wantMsg: "groups no cycles",
		},
		{
			name: "inverted year range",
			mutate: func(ds *Dataset) {
				ds.Cycles[0].StartYear = 3000
			},
			wantMsg: "EndYear failed gtefield",
		},
		{
			name: "zero duration",
			mutate: func(ds *Dataset) {
				ds.Cycles[0].Duration = 0
			},
			wantMsg: "Duration failed gt",
		},
		{
			name: "empty key texts",
			mutate: func(ds *Dataset) {
				ds.Traditions[0].KeyTexts = nil
			},
			wantMsg: "KeyTexts failed",
		},
		{
			name: "convergence entry off year",
			mutate: func(ds *Dataset) {
				ds.Convergence.Entries[0].End = 2012
			},
			wantMsg: "ends in 2012",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := builtinDataset()
			tt.mutate(&ds)

			c, err := New(ds)
			if err == nil {
				t.Fatal("New() error = nil, want integrity violation")
			}
			if c != nil {
				t.Error("New() returned a catalog alongside an error")
			}
			if !errors.Is(err, ErrIntegrity) {
				t.Errorf("errors.Is(err, ErrIntegrity) = false, err = %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMustLoad(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad() panicked: %v", r)
		}
	}()

	if MustLoad().Len() != len(builtinCycles()) {
		t.Error("MustLoad() cycle count mismatch")
	}
}
