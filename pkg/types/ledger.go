package types

import "errors"

// Ledger defines the interface for the calculation history and the memory
// registers (stack, named variables, last-result). The shell appends an
// entry after every successful computation; the backend decides how the
// data is persisted. All methods return ErrLedgerClosed after Close.
type Ledger interface {
	// Append records a history entry, assigning it a UUID v7 ID and a
	// creation timestamp, and returns the ID.
	Append(e *Entry) (string, error)

	// List returns history entries in creation order, oldest first.
	// limit <= 0 returns all entries.
	List(limit int) ([]*Entry, error)

	// ClearHistory removes all history entries.
	ClearHistory() error

	// Push adds a value to the top of the memory stack.
	Push(value float64) error

	// Pop removes and returns the top of the memory stack.
	// Returns ErrStackEmpty when there is nothing to pop.
	Pop() (float64, error)

	// Stack returns the memory stack, bottom first.
	Stack() ([]float64, error)

	// ClearStack empties the memory stack.
	ClearStack() error

	// SetVar stores a named scalar, overwriting any previous value.
	SetVar(name string, value float64) error

	// GetVar returns a named scalar. Returns ErrVarNotFound if the name
	// has never been set.
	GetVar(name string) (float64, error)

	// Vars returns all named scalars.
	Vars() (map[string]float64, error)

	// SetLast stores the last-result register.
	SetLast(value float64) error

	// Last returns the last-result register. Returns ErrNoLast if no
	// computation has run yet.
	Last() (float64, error)

	// Close releases backend resources. Idempotent.
	Close() error
}

// Config holds backend selection and parameters for opening a Ledger.
type Config struct {
	Backend string `json:"backend" mapstructure:"backend"`
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
