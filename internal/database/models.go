package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/tradition"
)

// Snapshot is everything one export writes.
type Snapshot struct {
	Cycles      []catalog.Cycle
	Traditions  []tradition.Tradition
	Events      []catalog.TimelineEvent
	Convergence catalog.Convergence
}

// ExportInfo describes the snapshot currently stored in the file.
type ExportInfo struct {
	ExportedAt      time.Time `json:"exported_at" yaml:"exported_at"`
	CycleCount      int       `json:"cycle_count" yaml:"cycle_count"`
	TraditionCount  int       `json:"tradition_count" yaml:"tradition_count"`
	EventCount      int       `json:"event_count" yaml:"event_count"`
	ConvergenceYear int       `json:"convergence_year" yaml:"convergence_year"`
}

// -----------------------------------------------------------------
// JSON array columns
// -----------------------------------------------------------------

// marshalStrings encodes a string list for a TEXT column. nil encodes as [].
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

// unmarshalStrings decodes a TEXT column written by marshalStrings.
func unmarshalStrings(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("unmarshal string list: %w", err)
	}
	return values, nil
}

// parseTimestamp parses SQLite TEXT timestamps, RFC3339 or datetime('now').
// It returns the zero time when the value is missing or malformed.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}
