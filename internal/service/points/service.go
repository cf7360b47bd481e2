// Package points implements the contribution ledger business logic:
// discovery validation, point awards, leaderboard and aggregate
// reconciliation.
package points

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ledgerRepo interface {
	Create(ctx context.Context, c *domain.Contribution) error
	HasDiscovery(ctx context.Context, userID uuid.UUID, wordKey string) (bool, error)
	CountByUserSince(ctx context.Context, userID uuid.UUID, kind domain.ContributionKind, since time.Time) (int, error)
	SumPointsByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error)
	CountDiscoveriesByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserAccount, error)
	ApplyDelta(ctx context.Context, id uuid.UUID, d domain.PointsDelta, now time.Time) error
	SetAggregates(ctx context.Context, id uuid.UUID, totalPoints, dailyPoints float64, wordsDiscovered int, now time.Time) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the points business logic. The ledger is the source
// of truth; account rows hold derived aggregates for fast reads.
type Service struct {
	log      *slog.Logger
	ledger   ledgerRepo
	accounts accountRepo
	tx       txManager
	cfg      config.DiscoveryConfig
	now      func() time.Time
}

// NewService creates a new points service.
func NewService(
	logger *slog.Logger,
	ledger ledgerRepo,
	accounts accountRepo,
	tx txManager,
	cfg config.DiscoveryConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "points"),
		ledger:   ledger,
		accounts: accounts,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}

// startOfDay returns UTC midnight of the current day. Daily quotas and
// daily points reset at this boundary.
func (s *Service) startOfDay() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
