package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/config"
	"github.com/zapponejosh/prophecy-cycles/internal/database"
	"github.com/zapponejosh/prophecy-cycles/internal/logger"
)

func (a *app) exportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a SQLite file",
		Long: `Writes cycles, traditions with their grouped cycles, timeline events and
the convergence summary to SQLite, replacing any earlier export in the same
file. The path defaults to EXPORT_PATH (./data/prophecy.db).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dbPath = cfg.ExportPath
			}

			info, err := a.export(cmd, dbPath)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.format, info, func(tw *tabwriter.Writer) {
				row(tw, "Path", dbPath)
				row(tw, "Exported at", info.ExportedAt.Format(time.RFC3339))
				row(tw, "Cycles", info.CycleCount)
				row(tw, "Traditions", info.TraditionCount)
				row(tw, "Events", info.EventCount)
				row(tw, "Convergence year", info.ConvergenceYear)
			})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file to write (default $EXPORT_PATH)")
	return cmd
}

// export migrates the file, writes the snapshot and reads it back.
func (a *app) export(cmd *cobra.Command, path string) (database.ExportInfo, error) {
	ctx := cmd.Context()
	start := time.Now()

	db, err := database.Open(ctx, database.DefaultConfig(path), a.log)
	if err != nil {
		return database.ExportInfo{}, err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return database.ExportInfo{}, fmt.Errorf("migrate: %w", err)
	}

	snap := database.Snapshot{
		Cycles:      a.svc.AllCycles(),
		Traditions:  a.svc.AllTraditions(),
		Events:      a.svc.TimelineEvents(),
		Convergence: a.svc.ConvergenceSummary(),
	}
	info, err := db.ExportCatalog(ctx, snap)
	if err != nil {
		return database.ExportInfo{}, err
	}

	if err := verifyExport(ctx, db, snap, info); err != nil {
		return database.ExportInfo{}, fmt.Errorf("export verification: %w", err)
	}

	logger.Info(ctx, "export complete",
		slog.String("path", path),
		slog.Duration("duration", time.Since(start)),
	)
	return info, nil
}

// verifyExport checks that the stored metadata, every cycle and every
// tradition grouping read back as written.
func verifyExport(ctx context.Context, db *database.DB, snap database.Snapshot, info database.ExportInfo) error {
	stored, err := db.GetExportInfo(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return errors.New("export metadata missing")
		}
		return err
	}
	if stored.CycleCount != info.CycleCount || stored.TraditionCount != info.TraditionCount ||
		stored.EventCount != info.EventCount || stored.ConvergenceYear != info.ConvergenceYear {
		return fmt.Errorf("metadata %+v does not match written %+v", stored, info)
	}

	n, err := db.CountCycles(ctx)
	if err != nil {
		return err
	}
	if n != len(snap.Cycles) {
		return fmt.Errorf("%d cycles stored, want %d", n, len(snap.Cycles))
	}

	for _, want := range snap.Cycles {
		got, err := db.GetCycleByID(ctx, want.ID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("cycle %q missing", want.ID)
			}
			return err
		}
		if got.Duration != want.Duration || got.StartYear != want.StartYear ||
			got.EndYear != want.EndYear || !slices.Equal(got.References, want.References) {
			return fmt.Errorf("cycle %q differs after read-back", want.ID)
		}
	}

	for _, t := range snap.Traditions {
		ids, err := db.ListTraditionCycleIDs(ctx, t.ID)
		if err != nil {
			if database.IsNotFound(err) {
				return fmt.Errorf("tradition %q missing", t.ID)
			}
			return err
		}
		want := make([]string, 0, len(t.Cycles))
		for _, c := range t.Cycles {
			want = append(want, c.ID)
		}
		if !slices.Equal(ids, want) {
			return fmt.Errorf("tradition %q groups %v, want %v", t.ID, ids, want)
		}
	}
	return nil
}
