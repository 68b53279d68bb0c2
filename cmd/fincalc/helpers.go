// Shared helpers for fincalc CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dukaforge/fincalc/internal/ledger"
	"github.com/dukaforge/fincalc/pkg/types"
)

// openStore resolves the data directory, creates the SQLite-backed ledger
// store, and opens it. The caller must defer store.Close(). Failures here
// are system errors and terminate the process.
func openStore() *ledger.Store {
	dataDir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve data dir:", err)
		os.Exit(exitSysError)
	}

	store := ledger.NewStore()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := store.Open(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "open ledger:", err)
		os.Exit(exitSysError)
	}
	return store
}

// record appends a history entry and updates the last-result register.
// A persistence failure is reported as a warning but never discards the
// computed result; the command still succeeds.
func record(store *ledger.Store, operation, inputs string, result float64) {
	entry := &types.Entry{Operation: operation, Inputs: inputs, Result: result}
	if _, err := store.Append(entry); err != nil {
		fmt.Fprintln(os.Stderr, "warning: recording history:", err)
	}
	if err := store.SetLast(result); err != nil {
		fmt.Fprintln(os.Stderr, "warning: storing last result:", err)
	}
}

// printResult renders a command result: the plain rendering by default,
// or the full result structure when --json is set.
func printResult(plain string, v any) error {
	if flagJSON {
		return printJSON(v)
	}
	fmt.Println(plain)
	return nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseFloat coerces a command argument to a float64.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseFloats coerces a list of command arguments to float64s.
func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := parseFloat(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// parseInt coerces a command argument to an int.
func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// formatFloat renders a float with full precision and no exponent noise
// for typical calculator magnitudes.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatMoney renders a currency amount with two decimal places.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
