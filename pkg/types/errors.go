package types

import (
	"errors"
	"fmt"
)

// ErrDomain is the root of the engine error taxonomy. Every precondition
// violation raised by an engine function wraps ErrDomain, so callers can
// distinguish domain errors (re-prompt the user) from system errors
// (storage, config) with a single errors.Is check.
var ErrDomain = errors.New("domain error")

// Arithmetic and statistics domain errors.
var (
	ErrDivideByZero     = fmt.Errorf("%w: division by zero", ErrDomain)
	ErrNegativeRoot     = fmt.Errorf("%w: even root of a negative number", ErrDomain)
	ErrLogDomain        = fmt.Errorf("%w: logarithm requires a positive argument and a valid base", ErrDomain)
	ErrFactorialDomain  = fmt.Errorf("%w: factorial is undefined for negative numbers", ErrDomain)
	ErrFactorialRange   = fmt.Errorf("%w: factorial result exceeds 64-bit range", ErrDomain)
	ErrEmptySample      = fmt.Errorf("%w: sample must not be empty", ErrDomain)
	ErrSampleTooSmall   = fmt.Errorf("%w: sample statistics require at least 2 observations", ErrDomain)
	ErrUnknownAngleUnit = fmt.Errorf("%w: unknown angle unit", ErrDomain)
)

// Financial domain errors.
var (
	ErrUnknownCategory = fmt.Errorf("%w: unknown GST category", ErrDomain)
	ErrLoanDomain      = fmt.Errorf("%w: loan requires positive principal and tenure and a non-negative rate", ErrDomain)
	ErrInvestDomain    = fmt.Errorf("%w: investment requires positive amounts and tenure and a non-negative rate", ErrDomain)
	ErrEquityRatio     = fmt.Errorf("%w: equity ratio must be between 0 and 75 percent", ErrDomain)
)

// Conversion domain errors.
var (
	ErrUnknownUnit       = fmt.Errorf("%w: unknown unit symbol", ErrDomain)
	ErrUnknownConversion = fmt.Errorf("%w: no conversion registered for this unit pair", ErrDomain)
	ErrUnknownPair       = fmt.Errorf("%w: no exchange rate registered for this currency pair", ErrDomain)
)

// Register errors.
var (
	ErrStackEmpty  = fmt.Errorf("%w: memory stack is empty", ErrDomain)
	ErrVarNotFound = fmt.Errorf("%w: variable not found", ErrDomain)
	ErrNoLast      = fmt.Errorf("%w: no result stored yet", ErrDomain)
)

// Rate table validation errors, raised while loading configuration.
var (
	ErrSlabOrder  = errors.New("slab bounds must be strictly increasing")
	ErrSlabRate   = errors.New("slab rates must be non-negative")
	ErrEmptyTable = errors.New("rate table must not be empty")
)

// Ledger lifecycle errors.
var (
	ErrLedgerClosed = errors.New("ledger is closed")
	ErrAlreadyOpen  = errors.New("ledger is already open")
	ErrInvalidEntry = errors.New("history entry must name an operation")
)
