// Memory register operations: the value stack, named variables, and the
// last-result register.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dukaforge/fincalc/pkg/types"
)

// Push adds a value to the top of the memory stack.
func (s *Store) Push(value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrLedgerClosed
	}

	_, err := s.db.Exec(
		"INSERT INTO stack (position, value) VALUES ((SELECT COALESCE(MAX(position), 0) + 1 FROM stack), ?)",
		value,
	)
	if err != nil {
		return fmt.Errorf("pushing value: %w", err)
	}
	return s.persistRegisters()
}

// Pop removes and returns the top of the memory stack.
// Returns ErrStackEmpty when there is nothing to pop.
func (s *Store) Pop() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, types.ErrLedgerClosed
	}

	var position int64
	var value float64
	err := s.db.QueryRow("SELECT position, value FROM stack ORDER BY position DESC LIMIT 1").Scan(&position, &value)
	if err == sql.ErrNoRows {
		return 0, types.ErrStackEmpty
	}
	if err != nil {
		return 0, fmt.Errorf("reading stack top: %w", err)
	}

	if _, err := s.db.Exec("DELETE FROM stack WHERE position = ?", position); err != nil {
		return 0, fmt.Errorf("popping value: %w", err)
	}
	if err := s.persistRegisters(); err != nil {
		return 0, err
	}
	return value, nil
}

// Stack returns the memory stack, bottom first.
func (s *Store) Stack() ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrLedgerClosed
	}

	rows, err := s.db.Query("SELECT value FROM stack ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying stack: %w", err)
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning stack row: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// ClearStack empties the memory stack.
func (s *Store) ClearStack() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrLedgerClosed
	}

	if _, err := s.db.Exec("DELETE FROM stack"); err != nil {
		return fmt.Errorf("clearing stack: %w", err)
	}
	return s.persistRegisters()
}

// SetVar stores a named scalar, overwriting any previous value.
func (s *Store) SetVar(name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrLedgerClosed
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO variables (name, value, updated_at) VALUES (?, ?, ?)",
		name, value, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("setting variable %q: %w", name, err)
	}
	return s.persistRegisters()
}

// GetVar returns a named scalar. Returns ErrVarNotFound if the name has
// never been set.
func (s *Store) GetVar(name string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return 0, types.ErrLedgerClosed
	}

	var value float64
	err := s.db.QueryRow("SELECT value FROM variables WHERE name = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %q", types.ErrVarNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("reading variable %q: %w", name, err)
	}
	return value, nil
}

// Vars returns all named scalars.
func (s *Store) Vars() (map[string]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrLedgerClosed
	}

	rows, err := s.db.Query("SELECT name, value FROM variables")
	if err != nil {
		return nil, fmt.Errorf("querying variables: %w", err)
	}
	defer rows.Close()

	vars := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning variable row: %w", err)
		}
		vars[name] = value
	}
	return vars, rows.Err()
}

// SetLast stores the last-result register.
func (s *Store) SetLast(value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrLedgerClosed
	}

	if _, err := s.db.Exec("INSERT OR REPLACE INTO registers (name, value) VALUES ('last', ?)", value); err != nil {
		return fmt.Errorf("setting last result: %w", err)
	}
	return s.persistRegisters()
}

// Last returns the last-result register. Returns ErrNoLast if no
// computation has run yet.
func (s *Store) Last() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return 0, types.ErrLedgerClosed
	}

	var value float64
	err := s.db.QueryRow("SELECT value FROM registers WHERE name = 'last'").Scan(&value)
	if err == sql.ErrNoRows {
		return 0, types.ErrNoLast
	}
	if err != nil {
		return 0, fmt.Errorf("reading last result: %w", err)
	}
	return value, nil
}
