package points

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 5. RemainingDiscoveries
// ---------------------------------------------------------------------------

// RemainingDiscoveries reports how many discoveries the user may still
// make today, derived from the ledger against the daily ceiling. Never
// negative.
func (s *Service) RemainingDiscoveries(ctx context.Context, userID uuid.UUID) (int, error) {
	today, err := s.ledger.CountByUserSince(ctx, userID, domain.ContributionDiscovery, s.startOfDay())
	if err != nil {
		return 0, fmt.Errorf("count daily discoveries: %w", err)
	}
	remaining := s.cfg.MaxDaily - today
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
