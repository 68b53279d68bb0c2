package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/fincalc/pkg/types"
)

// timeLayout is the timestamp format used in SQLite columns. The
// fractional second is fixed-width so that lexicographic ordering under
// ORDER BY created_at matches chronological ordering; RFC3339Nano would
// drop trailing zeros and sort whole seconds after fractional ones.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Append records a history entry: assigns a UUID v7 and a creation
// timestamp, inserts the row, and rewrites history.jsonl. Returns the
// entry ID.
func (s *Store) Append(e *types.Entry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return "", types.ErrLedgerClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	e.EntryID = id.String()
	e.CreatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		"INSERT INTO history (entry_id, created_at, operation, inputs, result) VALUES (?, ?, ?, ?, ?)",
		e.EntryID, e.CreatedAt.Format(timeLayout), e.Operation, e.Inputs, e.Result,
	)
	if err != nil {
		return "", fmt.Errorf("inserting history entry: %w", err)
	}

	if err := s.persistHistory(); err != nil {
		return "", fmt.Errorf("persisting history: %w", err)
	}
	return e.EntryID, nil
}

// List returns history entries oldest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]*types.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrLedgerClosed
	}
	return s.listLocked(limit)
}

// listLocked queries the history table. Callers must hold at least the
// read lock.
func (s *Store) listLocked(limit int) ([]*types.Entry, error) {
	query := "SELECT entry_id, created_at, operation, inputs, result FROM history ORDER BY created_at, entry_id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []*types.Entry
	for rows.Next() {
		var e types.Entry
		var created string
		if err := rows.Scan(&e.EntryID, &created, &e.Operation, &e.Inputs, &e.Result); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		ts, err := time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", created, err)
		}
		e.CreatedAt = ts
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// ClearHistory removes every history entry and rewrites history.jsonl.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrLedgerClosed
	}

	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return s.persistHistory()
}
