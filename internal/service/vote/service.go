// Package vote implements community voting on dictionary entries and the
// consensus rule that flips community verification.
package vote

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

type wordRepo interface {
	Get(ctx context.Context, key string) (*domain.WordEntry, error)
	ApplyVoteDeltas(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error)
	SetVerification(ctx context.Context, key string, verified, communityVerified bool) error
}

type voteRepo interface {
	Get(ctx context.Context, wordKey string, userID uuid.UUID) (*domain.Vote, error)
	Upsert(ctx context.Context, v *domain.Vote) error
	Delete(ctx context.Context, wordKey string, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type quotaTracker interface {
	TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// State is the voting state of a word as seen by one user.
type State struct {
	WordKey           string
	Counts            domain.VoteCounts
	UserVote          *domain.VoteKind
	Verified          bool
	CommunityVerified bool
}

// Service implements the voting business logic.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	votes      voteRepo
	tx         txManager
	quota      quotaTracker
	thresholds domain.ConsensusThresholds
	rateCfg    config.RateLimitConfig
	now        func() time.Time
}

// NewService creates a new vote service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	votes voteRepo,
	tx txManager,
	quota quotaTracker,
	consensusCfg config.ConsensusConfig,
	rateCfg config.RateLimitConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "vote"),
		words: words,
		votes: votes,
		tx:    tx,
		quota: quota,
		thresholds: domain.ConsensusThresholds{
			MinValidations: consensusCfg.MinValidations,
			MaxErrors:      consensusCfg.MaxErrors,
		},
		rateCfg: rateCfg,
		now:     time.Now,
	}
}
