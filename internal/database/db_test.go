package database

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/tradition"
)

// testDB creates a migrated in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	ctx := context.Background()
	db, err := Open(ctx, DefaultConfig(":memory:"), logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// testSnapshot builds an export snapshot from the embedded catalog.
func testSnapshot(t *testing.T) Snapshot {
	t.Helper()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return Snapshot{
		Cycles:      c.ListCycles(),
		Traditions:  tradition.BuildIndex(c.ListCycles(), c.Traditions()),
		Events:      c.TimelineEvents(),
		Convergence: c.Convergence(),
	}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	if err := db.PingContext(context.Background()); err != nil {
		t.Errorf("PingContext() error = %v", err)
	}
	if db.Path() != ":memory:" {
		t.Errorf("Path() = %q, want %q", db.Path(), ":memory:")
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Already applied in testDB; running again is a no-op
	count, err := db.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}
}

// -----------------------------------------------------------------
// Export tests
// -----------------------------------------------------------------

func TestExportCatalog(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	info, err := db.ExportCatalog(ctx, snap)
	if err != nil {
		t.Fatalf("ExportCatalog() error = %v", err)
	}
	if info.CycleCount != len(snap.Cycles) {
		t.Errorf("info.CycleCount = %d, want %d", info.CycleCount, len(snap.Cycles))
	}
	if info.ExportedAt.IsZero() {
		t.Error("info.ExportedAt is zero")
	}

	n, err := db.CountCycles(ctx)
	if err != nil {
		t.Fatalf("CountCycles() error = %v", err)
	}
	if n != len(snap.Cycles) {
		t.Errorf("CountCycles() = %d, want %d", n, len(snap.Cycles))
	}

	stored, err := db.GetExportInfo(ctx)
	if err != nil {
		t.Fatalf("GetExportInfo() error = %v", err)
	}
	if diff := cmp.Diff(info, stored); diff != "" {
		t.Errorf("GetExportInfo() mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCatalog_ReplacesSnapshot(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	for i := 0; i < 2; i++ {
		if _, err := db.ExportCatalog(ctx, snap); err != nil {
			t.Fatalf("ExportCatalog() run %d error = %v", i+1, err)
		}
	}

	n, err := db.CountCycles(ctx)
	if err != nil {
		t.Fatalf("CountCycles() error = %v", err)
	}
	if n != len(snap.Cycles) {
		t.Errorf("CountCycles() after two exports = %d, want %d", n, len(snap.Cycles))
	}
}

func TestExportCatalog_FailureKeepsPrevious(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	if _, err := db.ExportCatalog(ctx, snap); err != nil {
		t.Fatalf("ExportCatalog() error = %v", err)
	}

	bad := snap
	bad.Cycles = append([]catalog.Cycle{}, snap.Cycles...)
	bad.Cycles = append(bad.Cycles, snap.Cycles[0]) // duplicate primary key

	if _, err := db.ExportCatalog(ctx, bad); err == nil {
		t.Fatal("ExportCatalog(duplicate ids) error = nil")
	}

	n, err := db.CountCycles(ctx)
	if err != nil {
		t.Fatalf("CountCycles() error = %v", err)
	}
	if n != len(snap.Cycles) {
		t.Errorf("CountCycles() after failed export = %d, want %d", n, len(snap.Cycles))
	}
}

func TestGetCycleByID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	if _, err := db.ExportCatalog(ctx, snap); err != nil {
		t.Fatalf("ExportCatalog() error = %v", err)
	}

	for _, want := range snap.Cycles {
		got, err := db.GetCycleByID(ctx, want.ID)
		if err != nil {
			t.Fatalf("GetCycleByID(%q) error = %v", want.ID, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("GetCycleByID(%q) mismatch (-want +got):\n%s", want.ID, diff)
		}
	}

	_, err := db.GetCycleByID(ctx, "missing")
	if !IsNotFound(err) {
		t.Errorf("GetCycleByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestListTraditionCycleIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	if _, err := db.ExportCatalog(ctx, snap); err != nil {
		t.Fatalf("ExportCatalog() error = %v", err)
	}

	for _, tr := range snap.Traditions {
		want := []string{}
		for _, c := range tr.Cycles {
			want = append(want, c.ID)
		}

		got, err := db.ListTraditionCycleIDs(ctx, tr.ID)
		if err != nil {
			t.Fatalf("ListTraditionCycleIDs(%q) error = %v", tr.ID, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListTraditionCycleIDs(%q) mismatch (-want +got):\n%s", tr.ID, diff)
		}
	}

	_, err := db.ListTraditionCycleIDs(ctx, "missing")
	if !IsNotFound(err) {
		t.Errorf("ListTraditionCycleIDs(missing) error = %v, want ErrNotFound", err)
	}
}

func TestGetExportInfo_Empty(t *testing.T) {
	db := testDB(t)

	_, err := db.GetExportInfo(context.Background())
	if !IsNotFound(err) {
		t.Errorf("GetExportInfo() on empty store error = %v, want ErrNotFound", err)
	}
}

// -----------------------------------------------------------------
// Helper tests
// -----------------------------------------------------------------

func TestStringColumns(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty", []string{}, []string{}},
		{"values", []string{"Daniel 7:25", "Revelation 12:6"}, []string{"Daniel 7:25", "Revelation 12:6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := marshalStrings(tt.in)
			if err != nil {
				t.Fatalf("marshalStrings() error = %v", err)
			}
			got, err := unmarshalStrings(raw)
			if err != nil {
				t.Fatalf("unmarshalStrings(%q) error = %v", raw, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := unmarshalStrings("{not json"); err == nil {
		t.Error("unmarshalStrings(malformed) error = nil")
	}
}
