package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
)

// =============================================================================
// Export
// =============================================================================

// ExportCatalog replaces the stored snapshot with snap in one transaction.
// A failed export leaves the previous snapshot intact.
func (db *DB) ExportCatalog(ctx context.Context, snap Snapshot) (ExportInfo, error) {
	info := ExportInfo{
		ExportedAt:      time.Now().UTC().Truncate(time.Second),
		CycleCount:      len(snap.Cycles),
		TraditionCount:  len(snap.Traditions),
		EventCount:      len(snap.Events),
		ConvergenceYear: snap.Convergence.Year,
	}

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := clearSnapshot(ctx, tx); err != nil {
			return err
		}
		if err := insertCycles(ctx, tx, snap.Cycles); err != nil {
			return err
		}
		if err := insertTraditions(ctx, tx, snap); err != nil {
			return err
		}
		if err := insertEvents(ctx, tx, snap.Events); err != nil {
			return err
		}
		if err := insertConvergence(ctx, tx, snap.Convergence); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO export_meta (id, exported_at, cycle_count, tradition_count, event_count, convergence_year)
			VALUES (1, ?, ?, ?, ?, ?)
		`, info.ExportedAt.Format(time.RFC3339), info.CycleCount, info.TraditionCount,
			info.EventCount, info.ConvergenceYear)
		if err != nil {
			return fmt.Errorf("write export meta: %w", err)
		}
		return nil
	})
	if err != nil {
		return ExportInfo{}, fmt.Errorf("export catalog: %w", err)
	}

	db.logger.Info("catalog exported",
		slog.String("path", db.path),
		slog.Int("cycles", info.CycleCount),
		slog.Int("traditions", info.TraditionCount),
		slog.Int("events", info.EventCount),
	)
	return info, nil
}

func clearSnapshot(ctx context.Context, tx *Tx) error {
	// Children first; tradition_cycles references both parents.
	for _, table := range []string{
		"tradition_cycles", "cycles", "traditions",
		"timeline_events", "convergence_entries", "export_meta",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func insertCycles(ctx context.Context, tx *Tx, cycles []catalog.Cycle) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cycles (
			id, name, tradition, start_year, end_year, duration,
			description, key_prophecy, leader, source, refs, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare cycle insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range cycles {
		refs, err := marshalStrings(c.References)
		if err != nil {
			return fmt.Errorf("cycle %q: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.Tradition, c.StartYear, c.EndYear, c.Duration,
			c.Description, c.KeyProphecy, c.Leader, c.Source, refs, i,
		); err != nil {
			return fmt.Errorf("insert cycle %q: %w", c.ID, err)
		}
	}
	return nil
}

func insertTraditions(ctx context.Context, tx *Tx, snap Snapshot) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO traditions (
			id, name, title, origin, description, key_texts, significance, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare tradition insert: %w", err)
	}
	defer stmt.Close()

	link, err := tx.PrepareContext(ctx, `
		INSERT INTO tradition_cycles (tradition_id, cycle_id, position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare tradition_cycles insert: %w", err)
	}
	defer link.Close()

	for i, t := range snap.Traditions {
		keyTexts, err := marshalStrings(t.KeyTexts)
		if err != nil {
			return fmt.Errorf("tradition %q: %w", t.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Name, t.Title, t.Origin, t.Description, keyTexts, t.Significance, i,
		); err != nil {
			return fmt.Errorf("insert tradition %q: %w", t.ID, err)
		}

		for j, c := range t.Cycles {
			if _, err := link.ExecContext(ctx, t.ID, c.ID, j); err != nil {
				return fmt.Errorf("link tradition %q to cycle %q: %w", t.ID, c.ID, err)
			}
		}
	}
	return nil
}

func insertEvents(ctx context.Context, tx *Tx, events []catalog.TimelineEvent) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO timeline_events (year, event, tradition, significance) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, e.Year, e.Event, e.Tradition, e.Significance); err != nil {
			return fmt.Errorf("insert event %d %q: %w", e.Year, e.Event, err)
		}
	}
	return nil
}

func insertConvergence(ctx context.Context, tx *Tx, conv catalog.Convergence) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO convergence_entries (
			convergence_year, tradition, start_year, end_year, duration, convergence
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare convergence insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range conv.Entries {
		if _, err := stmt.ExecContext(ctx,
			conv.Year, e.Tradition, e.Start, e.End, e.Duration, e.Convergence,
		); err != nil {
			return fmt.Errorf("insert convergence entry %q: %w", e.Tradition, err)
		}
	}
	return nil
}

// =============================================================================
// Read-back Queries
// =============================================================================

// GetCycleByID reads one exported cycle.
// Returns ErrNotFound if the id is not in the snapshot.
func (db *DB) GetCycleByID(ctx context.Context, id string) (catalog.Cycle, error) {
	query := `
		SELECT id, name, tradition, start_year, end_year, duration,
			description, key_prophecy, leader, source, refs
		FROM cycles
		WHERE id = ?
	`

	var c catalog.Cycle
	var refs string
	err := db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Tradition, &c.StartYear, &c.EndYear, &c.Duration,
		&c.Description, &c.KeyProphecy, &c.Leader, &c.Source, &refs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Cycle{}, ErrNotFound
		}
		return catalog.Cycle{}, fmt.Errorf("query cycle %q: %w", id, err)
	}

	c.References, err = unmarshalStrings(refs)
	if err != nil {
		return catalog.Cycle{}, fmt.Errorf("cycle %q references: %w", id, err)
	}
	return c, nil
}

// CountCycles returns the number of exported cycles.
func (db *DB) CountCycles(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cycles").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cycles: %w", err)
	}
	return n, nil
}

// ListTraditionCycleIDs returns the cycle ids grouped under a tradition,
// in grouped order. Returns ErrNotFound if the tradition was not exported.
func (db *DB) ListTraditionCycleIDs(ctx context.Context, traditionID string) ([]string, error) {
	var exists int
	err := db.QueryRowContext(ctx,
		"SELECT 1 FROM traditions WHERE id = ?", traditionID,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query tradition %q: %w", traditionID, err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT cycle_id FROM tradition_cycles
		WHERE tradition_id = ?
		ORDER BY position
	`, traditionID)
	if err != nil {
		return nil, fmt.Errorf("query tradition cycles: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cycle id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tradition cycles: %w", err)
	}
	return ids, nil
}

// GetExportInfo reads the metadata of the stored snapshot.
// Returns ErrNotFound if nothing has been exported yet.
func (db *DB) GetExportInfo(ctx context.Context) (ExportInfo, error) {
	var info ExportInfo
	var exportedAt sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT exported_at, cycle_count, tradition_count, event_count, convergence_year
		FROM export_meta WHERE id = 1
	`).Scan(&exportedAt, &info.CycleCount, &info.TraditionCount, &info.EventCount, &info.ConvergenceYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ExportInfo{}, ErrNotFound
		}
		return ExportInfo{}, fmt.Errorf("query export meta: %w", err)
	}

	info.ExportedAt = parseTimestamp(exportedAt)
	return info, nil
}
