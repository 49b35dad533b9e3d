package database

// migrationsSQL contains all database migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1CatalogSchema,
	2: migrationV2ExportMeta,
}

// migrationV1CatalogSchema mirrors the catalog: list-valued fields are JSON
// arrays in TEXT columns, and tradition membership is a join table that keeps
// the grouped order.
const migrationV1CatalogSchema = `
CREATE TABLE IF NOT EXISTS cycles (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    tradition TEXT NOT NULL,
    start_year INTEGER NOT NULL,
    end_year INTEGER NOT NULL CHECK (end_year >= start_year),
    duration REAL NOT NULL CHECK (duration > 0),
    description TEXT NOT NULL,
    key_prophecy TEXT NOT NULL DEFAULT '',
    leader TEXT NOT NULL DEFAULT '',
    source TEXT NOT NULL,
    refs TEXT NOT NULL DEFAULT '[]',   -- JSON array
    position INTEGER NOT NULL          -- authored order
);

CREATE INDEX IF NOT EXISTS idx_cycles_tradition ON cycles(tradition);
CREATE INDEX IF NOT EXISTS idx_cycles_start_year ON cycles(start_year);
CREATE INDEX IF NOT EXISTS idx_cycles_end_year ON cycles(end_year);

CREATE TABLE IF NOT EXISTS traditions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    origin TEXT NOT NULL,
    description TEXT NOT NULL,
    key_texts TEXT NOT NULL DEFAULT '[]', -- JSON array
    significance TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tradition_cycles (
    tradition_id TEXT NOT NULL REFERENCES traditions(id) ON DELETE CASCADE,
    cycle_id TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    PRIMARY KEY (tradition_id, cycle_id)
);

CREATE TABLE IF NOT EXISTS timeline_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    year INTEGER NOT NULL,
    event TEXT NOT NULL,
    tradition TEXT NOT NULL DEFAULT '',
    significance TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_timeline_events_year ON timeline_events(year);

CREATE TABLE IF NOT EXISTS convergence_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    convergence_year INTEGER NOT NULL,
    tradition TEXT NOT NULL,
    start_year INTEGER NOT NULL,
    end_year INTEGER NOT NULL,
    duration REAL NOT NULL,
    convergence TEXT NOT NULL DEFAULT ''
);
`

// migrationV2ExportMeta records when the current snapshot was written.
const migrationV2ExportMeta = `
CREATE TABLE IF NOT EXISTS export_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    exported_at TEXT NOT NULL,
    cycle_count INTEGER NOT NULL,
    tradition_count INTEGER NOT NULL,
    event_count INTEGER NOT NULL,
    convergence_year INTEGER NOT NULL
);
`
