// Package error defines domain-specific errors for the GlowUp Wallet ledger.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidSeed is returned when a seed entity violates its field invariants.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrStoreAlreadyInitialized is returned when the store is initialized twice.
	ErrStoreAlreadyInitialized = errors.New("store already initialized")

	// ErrGoalNotFound is returned when an operation references a nonexistent goal.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidAmount is returned when a non-positive amount is supplied.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDivisionByZero is returned when progress is computed for a goal with a zero target.
	// Seed and creation validation make this unreachable through the store.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidGoalTitle is returned when a goal is created without a title.
	ErrInvalidGoalTitle = errors.New("invalid goal title")

	// ErrUnknownTheme is returned when a theme key is not recognized.
	ErrUnknownTheme = errors.New("unknown theme")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Seed errors (01XXXX)
	ErrCodeInvalidSeed             LedgerErrorCode = "LDG-010001"
	ErrCodeStoreAlreadyInitialized LedgerErrorCode = "LDG-010002"

	// Mutation errors (02XXXX)
	ErrCodeGoalNotFound     LedgerErrorCode = "LDG-020001"
	ErrCodeInvalidAmount    LedgerErrorCode = "LDG-020002"
	ErrCodeInvalidGoalTitle LedgerErrorCode = "LDG-020003"
	ErrCodeMissingFields    LedgerErrorCode = "LDG-020004"

	// Presentation errors (03XXXX)
	ErrCodeUnknownTheme LedgerErrorCode = "LDG-030001"

	// Invariant violations (09XXXX)
	ErrCodeDivisionByZero LedgerErrorCode = "LDG-090001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
