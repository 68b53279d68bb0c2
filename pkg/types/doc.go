// Package types defines the rate tables, history entry, Ledger interface,
// and standard error types shared by the fincalc engines and the storage
// backend.
package types
