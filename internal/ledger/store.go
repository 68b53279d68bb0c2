package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/fincalc/pkg/types"
)

// JSONL file names in the data directory.
const (
	historyFile   = "history.jsonl"
	registersFile = "registers.jsonl"

	dbFile = "fincalc.db"
)

// Compile-time interface check: Store must implement types.Ledger.
var _ types.Ledger = (*Store)(nil)

// Store implements types.Ledger using SQLite as the query engine and
// JSONL files as the source of truth.
type Store struct {
	mu      sync.RWMutex
	open    bool
	config  types.Config
	dataDir string
	db      *sql.DB
}

// NewStore creates a new Store instance. The store is not usable until
// Open is called with a Config.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store: creates the data directory if needed,
// rebuilds the SQLite schema, and loads the JSONL files into it.
// Returns ErrAlreadyOpen if called while already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is a rebuildable cache of the JSONL files; start from
	// a fresh schema every run.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.dataDir = dataDir

	if err := s.loadHistory(); err != nil {
		db.Close()
		return fmt.Errorf("loading history: %w", err)
	}
	if err := s.loadRegisters(); err != nil {
		db.Close()
		return fmt.Errorf("loading registers: %w", err)
	}

	s.open = true
	return nil
}

// Close releases the database handle. Idempotent: closing a closed store
// succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// loadHistory reads history.jsonl into the history table. Loading is
// transactional: all rows load or none do.
func (s *Store) loadHistory() error {
	records, err := readJSONL(filepath.Join(s.dataDir, historyFile))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		var e types.Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			continue
		}
		if e.Validate() != nil {
			continue
		}
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO history (entry_id, created_at, operation, inputs, result) VALUES (?, ?, ?, ?, ?)",
			e.EntryID, e.CreatedAt.Format(timeLayout), e.Operation, e.Inputs, e.Result,
		)
		if err != nil {
			return fmt.Errorf("inserting history entry: %w", err)
		}
	}

	return tx.Commit()
}

// registerRecord is the JSONL representation of one register value: a
// stack position, a named variable, or the last-result register.
type registerRecord struct {
	Kind     string  `json:"kind"` // "stack", "var", or "last"
	Name     string  `json:"name,omitempty"`
	Position int64   `json:"position,omitempty"`
	Value    float64 `json:"value"`
}

// Register record kinds.
const (
	kindStack = "stack"
	kindVar   = "var"
	kindLast  = "last"
)

// loadRegisters reads registers.jsonl into the stack, variables, and
// registers tables.
func (s *Store) loadRegisters() error {
	records, err := readJSONL(filepath.Join(s.dataDir, registersFile))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		var r registerRecord
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		switch r.Kind {
		case kindStack:
			if _, err := tx.Exec("INSERT OR REPLACE INTO stack (position, value) VALUES (?, ?)", r.Position, r.Value); err != nil {
				return fmt.Errorf("inserting stack value: %w", err)
			}
		case kindVar:
			if _, err := tx.Exec("INSERT OR REPLACE INTO variables (name, value, updated_at) VALUES (?, ?, '')", r.Name, r.Value); err != nil {
				return fmt.Errorf("inserting variable: %w", err)
			}
		case kindLast:
			if _, err := tx.Exec("INSERT OR REPLACE INTO registers (name, value) VALUES ('last', ?)", r.Value); err != nil {
				return fmt.Errorf("inserting last result: %w", err)
			}
		}
	}

	return tx.Commit()
}

// persistHistory rewrites history.jsonl from the history table.
// Callers must hold the write lock.
func (s *Store) persistHistory() error {
	entries, err := s.listLocked(0)
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshaling history entry: %w", err)
		}
		records = append(records, data)
	}
	return writeJSONL(filepath.Join(s.dataDir, historyFile), records)
}

// persistRegisters rewrites registers.jsonl from the stack, variables,
// and registers tables. Callers must hold the write lock.
func (s *Store) persistRegisters() error {
	var records []json.RawMessage

	appendRecord := func(r registerRecord) error {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling register record: %w", err)
		}
		records = append(records, data)
		return nil
	}

	rows, err := s.db.Query("SELECT position, value FROM stack ORDER BY position")
	if err != nil {
		return fmt.Errorf("querying stack: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r registerRecord
		r.Kind = kindStack
		if err := rows.Scan(&r.Position, &r.Value); err != nil {
			return fmt.Errorf("scanning stack row: %w", err)
		}
		if err := appendRecord(r); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	varRows, err := s.db.Query("SELECT name, value FROM variables ORDER BY name")
	if err != nil {
		return fmt.Errorf("querying variables: %w", err)
	}
	defer varRows.Close()
	for varRows.Next() {
		r := registerRecord{Kind: kindVar}
		if err := varRows.Scan(&r.Name, &r.Value); err != nil {
			return fmt.Errorf("scanning variable row: %w", err)
		}
		if err := appendRecord(r); err != nil {
			return err
		}
	}
	if err := varRows.Err(); err != nil {
		return err
	}

	var last float64
	err = s.db.QueryRow("SELECT value FROM registers WHERE name = 'last'").Scan(&last)
	switch err {
	case nil:
		if err := appendRecord(registerRecord{Kind: kindLast, Value: last}); err != nil {
			return err
		}
	case sql.ErrNoRows:
		// No last result yet.
	default:
		return fmt.Errorf("querying last result: %w", err)
	}

	return writeJSONL(filepath.Join(s.dataDir, registersFile), records)
}
