// Package ledger implements the SQLite-backed history ledger and memory
// registers for fincalc. SQLite serves as the query engine while JSONL
// files in the data directory remain the human-readable source of truth:
// they are loaded at startup and atomically rewritten after every
// successful mutation.
package ledger

// Schema DDL for all tables.
const (
	createHistory = `CREATE TABLE history (
    entry_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    operation TEXT NOT NULL,
    inputs TEXT,
    result REAL NOT NULL
);`

	createStack = `CREATE TABLE stack (
    position INTEGER PRIMARY KEY,
    value REAL NOT NULL
);`

	createVariables = `CREATE TABLE variables (
    name TEXT PRIMARY KEY,
    value REAL NOT NULL,
    updated_at TEXT NOT NULL
);`

	createRegisters = `CREATE TABLE registers (
    name TEXT PRIMARY KEY,
    value REAL NOT NULL
);`
)

// schemaDDL lists the statements executed at open, in order.
var schemaDDL = []string{
	createHistory,
	createStack,
	createVariables,
	createRegisters,
}
