// Package error defines domain-specific errors for the GlowUp Wallet ledger.
package error

import "errors"

// Advice domain errors. These never reach the chat user; the gateway turns
// them into fallback text.
var (
	// ErrAdviceUnavailable is returned when no advice credential is configured.
	ErrAdviceUnavailable = errors.New("advice service is not configured")

	// ErrEmptyAdvice is returned when the model answered without any text.
	ErrEmptyAdvice = errors.New("advice service returned no text")

	// ErrSubmissionPending is returned when a chat session already has a request in flight.
	ErrSubmissionPending = errors.New("a chat submission is already pending")

	// ErrRateLimited is returned when a client exceeded the advice request budget.
	ErrRateLimited = errors.New("too many requests")
)

// AdviceErrorCode defines error codes for advice errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Service errors (01XXXX)
	ErrCodeAdviceUnavailable AdviceErrorCode = "ADV-010001"
	ErrCodeEmptyAdvice       AdviceErrorCode = "ADV-010002"

	// Request errors (02XXXX)
	ErrCodeSubmissionPending AdviceErrorCode = "ADV-020001"
	ErrCodeRateLimited       AdviceErrorCode = "ADV-020002"
	ErrCodeEmptyMessage      AdviceErrorCode = "ADV-020003"
)

// AdviceError represents an advice error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
