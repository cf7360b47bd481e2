// Package quota implements windowed request counting for abuse mitigation.
//
// Two implementations exist: Memory for single-instance deployments
// (counters die with the process, which is acceptable for rate limiting)
// and Redis for horizontally scaled deployments where every instance must
// see the same counters.
package quota

import (
	"context"
	"time"
)

// Tracker counts consumptions of a key within a time window.
type Tracker interface {
	// TryConsume records one consumption of key. It returns true while the
	// window's count stays at or under ceiling; once the ceiling is reached
	// further calls return false without incrementing. A key whose window
	// has expired is treated as absent and restarted at count 1.
	TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error)

	// Remaining returns how many consumptions are left for key in the
	// current window, ceiling if the key is absent or expired.
	Remaining(ctx context.Context, key string, ceiling int) (int, error)
}

// EndpointKey builds the composite key for per-endpoint-per-identity
// limits, e.g. "vote:6a1f...".
func EndpointKey(endpoint, identity string) string {
	return endpoint + ":" + identity
}

// UntilMidnight returns the duration from now until the next local
// midnight. Daily quotas use it as their window so every counter resets at
// 00:00 regardless of when it was first touched.
func UntilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
