// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SubmissionGate allows at most one pending chat submission per session.
type SubmissionGate interface {
	// TryAcquire marks the session busy and returns the token that owns the
	// mark. It returns false when a submission is already pending. The mark
	// expires after ttl in case Release is lost.
	TryAcquire(ctx context.Context, sessionID string, ttl time.Duration) (token string, ok bool, err error)

	// Release clears the busy mark of the session if token still owns it.
	// A mark that expired and was taken by another submission is left alone.
	Release(ctx context.Context, sessionID, token string) error
}
