package quota

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// Memory is an in-process Tracker. Expiry is lazy: an entry whose resetAt
// has passed is treated as absent and silently replaced on the next touch.
// A background sweep evicts stale entries so abandoned keys do not
// accumulate between touches.
type Memory struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemory creates an in-memory tracker and starts the sweep goroutine.
// Call Stop on shutdown.
func NewMemory(sweepInterval time.Duration) *Memory {
	m := &Memory{
		windows: make(map[string]*window),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go m.sweep(sweepInterval)
	return m
}

// newMemoryAt is a test constructor with an injected clock and no sweeper.
func newMemoryAt(now func() time.Time) *Memory {
	return &Memory{
		windows: make(map[string]*window),
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Stop terminates the background sweep goroutine.
func (m *Memory) Stop() {
	m.once.Do(func() { close(m.stop) })
}

// TryConsume implements Tracker.
func (m *Memory) TryConsume(_ context.Context, key string, ceiling int, windowLen time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !w.resetAt.After(now) {
		m.windows[key] = &window{count: 1, resetAt: now.Add(windowLen)}
		return true, nil
	}

	if w.count >= ceiling {
		return false, nil
	}
	w.count++
	return true, nil
}

// Remaining implements Tracker.
func (m *Memory) Remaining(_ context.Context, key string, ceiling int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[key]
	if !ok || !w.resetAt.After(m.now()) {
		return ceiling, nil
	}
	if w.count >= ceiling {
		return 0, nil
	}
	return ceiling - w.count, nil
}

func (m *Memory) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictExpired()
		}
	}
}

func (m *Memory) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, w := range m.windows {
		if !w.resetAt.After(now) {
			delete(m.windows, key)
		}
	}
}
