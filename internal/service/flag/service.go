// Package flag implements user reports against dictionary entries.
package flag

import (
	"context"
	"log/slog"
	"time"

	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flagRepo interface {
	Create(ctx context.Context, f *domain.Flag) error
	ListOpenByWord(ctx context.Context, wordKey string) ([]domain.Flag, error)
}

type wordRepo interface {
	Get(ctx context.Context, key string) (*domain.WordEntry, error)
}

type quotaTracker interface {
	TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the flag business logic.
type Service struct {
	log     *slog.Logger
	flags   flagRepo
	words   wordRepo
	quota   quotaTracker
	rateCfg config.RateLimitConfig
	now     func() time.Time
}

// NewService creates a new flag service.
func NewService(
	logger *slog.Logger,
	flags flagRepo,
	words wordRepo,
	quota quotaTracker,
	rateCfg config.RateLimitConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "flag"),
		flags:   flags,
		words:   words,
		quota:   quota,
		rateCfg: rateCfg,
		now:     time.Now,
	}
}

// minReasonLen is the shortest accepted reason, after trimming.
const minReasonLen = 10
