package error

import "errors"

// Notification errors. Subscribers return them to the event dispatcher,
// which logs them; the ledger mutation that raised the event still succeeds.
var (
	// ErrRecipientMissing is returned when a celebration has nowhere to go.
	ErrRecipientMissing = errors.New("notification recipient missing")

	// ErrNotificationRejected is returned when the provider refused the message,
	// e.g. a bad API key or an invalid payload. Sending it again will not help.
	ErrNotificationRejected = errors.New("notification rejected by provider")

	// ErrNotificationUndelivered is returned when the provider could not be
	// reached or was throttling.
	ErrNotificationUndelivered = errors.New("notification not delivered")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeRecipientMissing NotificationErrorCode = "NTF-010001"

	// Delivery errors (02XXXX)
	ErrCodeNotificationRejected    NotificationErrorCode = "NTF-020001"
	ErrCodeNotificationUndelivered NotificationErrorCode = "NTF-020002"
)

// NotificationError carries a code alongside the underlying failure.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
