package database

// migrationsSQL holds the schema, keyed by version. Versions are applied in
// order and recorded in schema_migrations; never edit an applied version.
var migrationsSQL = map[int]string{
	1: migrationV1Periods,
	2: migrationV2Imports,
}

// migrationV1Periods stores one row per period of the active table.
//
// Term starts are stored already moved to their Monday, so start_date is
// unique across the whole table just as it is in memory.
const migrationV1Periods = `
CREATE TABLE IF NOT EXISTS periods (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    kind TEXT NOT NULL CHECK (kind IN ('term', 'holiday', 'semester')),
    name TEXT NOT NULL,

    -- ISO-8601 calendar date, e.g. 2019-09-30
    start_date TEXT NOT NULL UNIQUE,

    -- Semester week names as a JSON array; '[]' for terms and holidays
    weeks TEXT NOT NULL DEFAULT '[]',

    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_periods_kind_name
    ON periods(kind, name);
`

// migrationV2Imports records each table import for auditing.
const migrationV2Imports = `
CREATE TABLE IF NOT EXISTS table_imports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    period_count INTEGER NOT NULL,
    imported_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
