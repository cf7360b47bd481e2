// Package dictionary implements the word lookup and discovery pipeline:
// search-or-generate, autocomplete and development-only regeneration.
package dictionary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/ai"
	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Get(ctx context.Context, key string) (*domain.WordEntry, error)
	Create(ctx context.Context, e *domain.WordEntry) error
	ReplaceContent(ctx context.Context, e *domain.WordEntry, now time.Time) error
	Suggest(ctx context.Context, term string, limit int) ([]domain.Suggestion, error)
}

type searchLogRepo interface {
	Create(ctx context.Context, l *domain.SearchLog) error
}

type analyzer interface {
	Analyze(ctx context.Context, word string) (*ai.WordAnalysis, error)
}

type pointsService interface {
	ValidateDiscovery(ctx context.Context, userID uuid.UUID, wordKey string, confidence float64) error
	AwardDiscovery(ctx context.Context, userID uuid.UUID, wordKey string) (*domain.Contribution, error)
	RemainingDiscoveries(ctx context.Context, userID uuid.UUID) (int, error)
}

type quotaTracker interface {
	TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error)
	Remaining(ctx context.Context, key string, ceiling int) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// SearchResult is the outcome of a search: the entry plus discovery
// bookkeeping when the search minted a new word.
type SearchResult struct {
	Entry         *domain.WordEntry
	IsNew         bool
	PointsAwarded float64
	Message       string
}

// Service implements the dictionary business logic.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	logs    searchLogRepo
	ai      analyzer
	points  pointsService
	quota   quotaTracker
	cfg     config.DiscoveryConfig
	aiModel string

	// allowRegenerate gates the development-only regeneration endpoint.
	allowRegenerate bool

	now func() time.Time
}

// NewService creates a new dictionary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	logs searchLogRepo,
	analyzer analyzer,
	points pointsService,
	quota quotaTracker,
	cfg config.DiscoveryConfig,
	aiModel string,
	allowRegenerate bool,
) *Service {
	return &Service{
		log:             logger.With("service", "dictionary"),
		words:           words,
		logs:            logs,
		ai:              analyzer,
		points:          points,
		quota:           quota,
		cfg:             cfg,
		aiModel:         aiModel,
		allowRegenerate: allowRegenerate,
		now:             time.Now,
	}
}

// autocompleteLimit caps suggestion lists.
const autocompleteLimit = 10

// minPrefixRunes is the shortest prefix autocomplete will serve.
const minPrefixRunes = 2
