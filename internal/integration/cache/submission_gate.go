// Package cache implements the chat submission gate.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/glowup-wallet/backend/internal/application/adapter"
)

const keyPrefix = "glowup:chat:pending:"

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSubmissionGate marks busy sessions with SET NX PX so every API
// instance sees the same pending submission.
type RedisSubmissionGate struct {
	client *redis.Client
}

// NewRedisSubmissionGate creates a new RedisSubmissionGate.
func NewRedisSubmissionGate(client *redis.Client) *RedisSubmissionGate {
	return &RedisSubmissionGate{
		client: client,
	}
}

// TryAcquire implements adapter.SubmissionGate.
func (g *RedisSubmissionGate) TryAcquire(ctx context.Context, sessionID string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, keyPrefix+sessionID, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire chat session: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release implements adapter.SubmissionGate.
func (g *RedisSubmissionGate) Release(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{keyPrefix + sessionID}, token).Err(); err != nil {
		return fmt.Errorf("failed to release chat session: %w", err)
	}
	return nil
}

type pendingSubmission struct {
	token  string
	expiry time.Time
}

// MemorySubmissionGate is the single-process SubmissionGate.
type MemorySubmissionGate struct {
	mu      sync.Mutex
	pending map[string]pendingSubmission
	now     func() time.Time
}

// NewMemorySubmissionGate creates a new MemorySubmissionGate.
func NewMemorySubmissionGate() *MemorySubmissionGate {
	return &MemorySubmissionGate{
		pending: make(map[string]pendingSubmission),
		now:     time.Now,
	}
}

// TryAcquire implements adapter.SubmissionGate.
func (g *MemorySubmissionGate) TryAcquire(_ context.Context, sessionID string, ttl time.Duration) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if p, ok := g.pending[sessionID]; ok && now.Before(p.expiry) {
		return "", false, nil
	}
	token := uuid.NewString()
	g.pending[sessionID] = pendingSubmission{token: token, expiry: now.Add(ttl)}
	return token, true, nil
}

// Release implements adapter.SubmissionGate.
func (g *MemorySubmissionGate) Release(_ context.Context, sessionID, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.pending[sessionID]; ok && p.token == token {
		delete(g.pending, sessionID)
	}
	return nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.SubmissionGate = (*RedisSubmissionGate)(nil)
	_ adapter.SubmissionGate = (*MemorySubmissionGate)(nil)
)
