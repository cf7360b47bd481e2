package points

import (
	"context"
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 3. Leaderboard
// ---------------------------------------------------------------------------

// Leaderboard returns the top accounts by total points, ties broken by
// earlier registration. limit defaults to 10 and is capped at 100.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	limit = clampLimit(limit, 1, 100, 10)

	rows, err := s.accounts.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return rows, nil
}
