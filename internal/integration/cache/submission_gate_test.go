package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/glowup-wallet/backend/internal/application/adapter"
)

func newRedisGate(t *testing.T) (*RedisSubmissionGate, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSubmissionGate(client), server
}

func TestSubmissionGates(t *testing.T) {
	redisGate, _ := newRedisGate(t)
	gates := map[string]adapter.SubmissionGate{
		"redis":  redisGate,
		"memory": NewMemorySubmissionGate(),
	}

	for name, gate := range gates {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			token, ok, err := gate.TryAcquire(ctx, "session-a", time.Minute)
			if err != nil || !ok || token == "" {
				t.Fatalf("expected first acquire to succeed, got %q, %v, %v", token, ok, err)
			}

			_, ok, err = gate.TryAcquire(ctx, "session-a", time.Minute)
			if err != nil || ok {
				t.Errorf("expected second acquire to be refused, got %v, %v", ok, err)
			}

			_, ok, err = gate.TryAcquire(ctx, "session-b", time.Minute)
			if err != nil || !ok {
				t.Errorf("expected other session to acquire, got %v, %v", ok, err)
			}

			if err := gate.Release(ctx, "session-a", "not-the-owner"); err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}
			if _, ok, _ := gate.TryAcquire(ctx, "session-a", time.Minute); ok {
				t.Error("expected a foreign token to leave the session pending")
			}

			if err := gate.Release(ctx, "session-a", token); err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}

			_, ok, err = gate.TryAcquire(ctx, "session-a", time.Minute)
			if err != nil || !ok {
				t.Errorf("expected acquire after release, got %v, %v", ok, err)
			}
		})
	}
}

func TestSubmissionGates_ConcurrentAcquire(t *testing.T) {
	redisGate, _ := newRedisGate(t)
	gates := map[string]adapter.SubmissionGate{
		"redis":  redisGate,
		"memory": NewMemorySubmissionGate(),
	}

	for name, gate := range gates {
		t.Run(name, func(t *testing.T) {
			var (
				wg       sync.WaitGroup
				acquired atomic.Int32
			)
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, ok, err := gate.TryAcquire(context.Background(), "same", time.Minute); err == nil && ok {
						acquired.Add(1)
					}
				}()
			}
			wg.Wait()

			if acquired.Load() != 1 {
				t.Errorf("expected exactly 1 acquire, got %d", acquired.Load())
			}
		})
	}
}

func TestRedisSubmissionGate_Expires(t *testing.T) {
	gate, server := newRedisGate(t)
	ctx := context.Background()

	if _, ok, _ := gate.TryAcquire(ctx, "s", 10*time.Second); !ok {
		t.Fatal("expected acquire")
	}
	server.FastForward(11 * time.Second)

	if _, ok, err := gate.TryAcquire(ctx, "s", 10*time.Second); err != nil || !ok {
		t.Errorf("expected acquire after expiry, got %v, %v", ok, err)
	}
}

func TestMemorySubmissionGate_Expires(t *testing.T) {
	gate := NewMemorySubmissionGate()
	now := time.Date(2023, 10, 24, 9, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return now }
	ctx := context.Background()

	if _, ok, _ := gate.TryAcquire(ctx, "s", 10*time.Second); !ok {
		t.Fatal("expected acquire")
	}
	now = now.Add(11 * time.Second)

	if _, ok, err := gate.TryAcquire(ctx, "s", 10*time.Second); err != nil || !ok {
		t.Errorf("expected acquire after expiry, got %v, %v", ok, err)
	}
}

func TestRedisSubmissionGate_ServerDown(t *testing.T) {
	gate, server := newRedisGate(t)
	server.Close()

	if _, _, err := gate.TryAcquire(context.Background(), "s", time.Second); err == nil {
		t.Error("expected error when redis is unreachable")
	}
}

func TestSubmissionGates_ExpiredOwnerCannotReleaseSuccessor(t *testing.T) {
	redisGate, server := newRedisGate(t)
	memoryGate := NewMemorySubmissionGate()
	now := time.Date(2023, 10, 24, 9, 0, 0, 0, time.UTC)
	memoryGate.now = func() time.Time { return now }

	tests := []struct {
		name    string
		gate    adapter.SubmissionGate
		advance func(time.Duration)
	}{
		{name: "redis", gate: redisGate, advance: server.FastForward},
		{name: "memory", gate: memoryGate, advance: func(d time.Duration) { now = now.Add(d) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			first, ok, err := tt.gate.TryAcquire(ctx, "slow", 10*time.Second)
			if err != nil || !ok {
				t.Fatalf("expected first acquire, got %v, %v", ok, err)
			}
			tt.advance(11 * time.Second)

			second, ok, err := tt.gate.TryAcquire(ctx, "slow", 10*time.Second)
			if err != nil || !ok {
				t.Fatalf("expected acquire after expiry, got %v, %v", ok, err)
			}
			if first == second {
				t.Fatal("expected a fresh token per acquire")
			}

			// The first submission finishes late and releases its own, expired mark.
			if err := tt.gate.Release(ctx, "slow", first); err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}

			if _, ok, _ := tt.gate.TryAcquire(ctx, "slow", 10*time.Second); ok {
				t.Error("expected the second submission to keep the session pending")
			}

			if err := tt.gate.Release(ctx, "slow", second); err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}
			if _, ok, _ := tt.gate.TryAcquire(ctx, "slow", 10*time.Second); !ok {
				t.Error("expected acquire after the owner released")
			}
		})
	}
}
