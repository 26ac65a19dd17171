package adapter

import "context"

// Email is a rendered message ready for delivery.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
	// Tags are attached to the message for filtering on the provider side.
	Tags map[string]string
}

// Mailer delivers rendered emails.
type Mailer interface {
	// Deliver sends the email and returns the provider's message id.
	Deliver(ctx context.Context, email Email) (string, error)
}
