// Package email delivers goal celebrations by email through Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// ResendOptions configures a ResendMailer.
type ResendOptions struct {
	APIKey    string
	FromName  string
	FromEmail string
	// BaseURL overrides the Resend API endpoint. Empty keeps the default.
	BaseURL string
}

// ResendMailer implements adapter.Mailer on top of the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a new ResendMailer.
func NewResendMailer(opts ResendOptions) (*ResendMailer, error) {
	client := resend.NewClient(opts.APIKey)

	if opts.BaseURL != "" {
		raw := opts.BaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		baseURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = baseURL
	}

	return &ResendMailer{
		client: client,
		from:   fmt.Sprintf("%s <%s>", opts.FromName, opts.FromEmail),
	}, nil
}

// Deliver sends the email and returns the Resend message id.
func (m *ResendMailer) Deliver(ctx context.Context, email adapter.Email) (string, error) {
	if email.To == "" {
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodeRecipientMissing,
			"recipient is required",
			domainerror.ErrRecipientMissing,
		)
	}

	resp, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Tags:    resendTags(email.Tags),
	})
	if err != nil {
		return "", classifyResendError(err)
	}

	return resp.Id, nil
}

// resendTags converts tags in key order so requests are stable.
func resendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		out = append(out, resend.Tag{Name: name, Value: tags[name]})
	}
	return out
}

// transientMarkers identify Resend answers worth sending again later:
// throttling and server side failures.
var transientMarkers = []string{
	"429",
	"rate limit",
	"too many requests",
	"500",
	"502",
	"503",
	"504",
	"internal server error",
	"unavailable",
}

// classifyResendError splits failures into undelivered (network, timeouts,
// throttling, 5xx) and rejected (anything else the API answered with).
func classifyResendError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return undelivered(err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return undelivered(err)
		}
	}

	return domainerror.NewNotificationError(
		domainerror.ErrCodeNotificationRejected,
		"resend rejected the email",
		errors.Join(domainerror.ErrNotificationRejected, err),
	)
}

func undelivered(err error) error {
	return domainerror.NewNotificationError(
		domainerror.ErrCodeNotificationUndelivered,
		"resend could not deliver the email",
		errors.Join(domainerror.ErrNotificationUndelivered, err),
	)
}

var _ adapter.Mailer = (*ResendMailer)(nil)
