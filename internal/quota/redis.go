package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Tracker backed by a shared Redis instance. Counting uses
// atomic INCR with a TTL set on first touch, so concurrent instances
// enforce one shared ceiling instead of one ceiling each.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed tracker.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, prefix: "quota:"}
}

// TryConsume implements Tracker.
func (r *Redis) TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error) {
	full := r.prefix + key

	count, err := r.client.Incr(ctx, full).Result()
	if err != nil {
		return false, fmt.Errorf("quota incr %s: %w", key, err)
	}

	if count == 1 {
		if err := r.client.Expire(ctx, full, window).Err(); err != nil {
			return false, fmt.Errorf("quota expire %s: %w", key, err)
		}
	}

	return count <= int64(ceiling), nil
}

// Remaining implements Tracker.
func (r *Redis) Remaining(ctx context.Context, key string, ceiling int) (int, error) {
	count, err := r.client.Get(ctx, r.prefix+key).Int()
	if err != nil {
		if err == redis.Nil {
			return ceiling, nil
		}
		return 0, fmt.Errorf("quota get %s: %w", key, err)
	}
	if count >= ceiling {
		return 0, nil
	}
	return ceiling - count, nil
}
