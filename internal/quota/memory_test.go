package quota

import (
	"context"
	"testing"
	"time"
)

func TestMemory_TryConsume_Ceiling(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newMemoryAt(func() time.Time { return now })
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		ok, err := m.TryConsume(ctx, "user-1", 3, time.Minute)
		if err != nil {
			t.Fatalf("TryConsume #%d: %v", i, err)
		}
		if !ok {
			t.Fatalf("call %d within ceiling should be allowed", i)
		}
	}

	// 4th call within the window is rejected.
	ok, err := m.TryConsume(ctx, "user-1", 3, time.Minute)
	if err != nil {
		t.Fatalf("TryConsume: %v", err)
	}
	if ok {
		t.Fatal("4th call should exceed ceiling of 3")
	}

	rem, err := m.Remaining(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if rem != 0 {
		t.Fatalf("Remaining = %d, want 0", rem)
	}
}

func TestMemory_TryConsume_WindowExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newMemoryAt(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.TryConsume(ctx, "user-1", 3, time.Minute)
	}
	if ok, _ := m.TryConsume(ctx, "user-1", 3, time.Minute); ok {
		t.Fatal("should be at ceiling")
	}

	// Cross the window boundary: counter resets to 1.
	now = now.Add(time.Minute + time.Second)
	if ok, _ := m.TryConsume(ctx, "user-1", 3, time.Minute); !ok {
		t.Fatal("first call after expiry should be allowed")
	}
	rem, _ := m.Remaining(ctx, "user-1", 3)
	if rem != 2 {
		t.Fatalf("Remaining after reset = %d, want 2", rem)
	}
}

func TestMemory_IndependentKeys(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newMemoryAt(func() time.Time { return now })
	ctx := context.Background()

	m.TryConsume(ctx, EndpointKey("vote", "user-1"), 1, time.Minute)
	if ok, _ := m.TryConsume(ctx, EndpointKey("vote", "user-1"), 1, time.Minute); ok {
		t.Fatal("user-1 should be at ceiling")
	}
	if ok, _ := m.TryConsume(ctx, EndpointKey("vote", "user-2"), 1, time.Minute); !ok {
		t.Fatal("user-2 has an independent counter")
	}
	if ok, _ := m.TryConsume(ctx, EndpointKey("flag", "user-1"), 1, time.Minute); !ok {
		t.Fatal("flag endpoint has an independent counter")
	}
}

func TestMemory_EvictExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newMemoryAt(func() time.Time { return now })
	ctx := context.Background()

	m.TryConsume(ctx, "a", 5, time.Minute)
	m.TryConsume(ctx, "b", 5, time.Hour)

	now = now.Add(10 * time.Minute)
	m.evictExpired()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.windows["a"]; ok {
		t.Error("expired window should be evicted")
	}
	if _, ok := m.windows["b"]; !ok {
		t.Error("live window should survive the sweep")
	}
}

func TestUntilMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	if got := UntilMidnight(now); got != time.Hour {
		t.Fatalf("UntilMidnight = %v, want 1h", got)
	}

	early := time.Date(2026, 3, 1, 0, 0, 1, 0, time.UTC)
	want := 24*time.Hour - time.Second
	if got := UntilMidnight(early); got != want {
		t.Fatalf("UntilMidnight = %v, want %v", got, want)
	}
}
