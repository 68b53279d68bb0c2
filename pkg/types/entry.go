package types

import "time"

// Entry is one record in the calculation history ledger: which operation
// ran, a human-readable rendering of its inputs, and the numeric result.
// Entries are append-only and ordered by creation time.
type Entry struct {
	EntryID   string    `json:"entry_id"`   // UUID v7, generated on append.
	CreatedAt time.Time `json:"created_at"` // Timestamp of the computation.
	Operation string    `json:"operation"`  // Operation name, e.g. "Loan EMI".
	Inputs    string    `json:"inputs"`     // Input description, e.g. "P=1000000, r=8.5%, t=20y".
	Result    float64   `json:"result"`     // Primary numeric result.
}

// Validate checks that the entry names an operation.
func (e *Entry) Validate() error {
	if e.Operation == "" {
		return ErrInvalidEntry
	}
	return nil
}
