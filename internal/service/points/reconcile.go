package points

import (
	"context"
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// 4. Reconcile
// ---------------------------------------------------------------------------

// Reconcile recomputes every account's aggregates from the ledger and
// overwrites the cached values. Run offline (the reconcile command) to
// repair drift after crashes between ledger append and aggregate bump.
// Returns the number of accounts rewritten.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	ids, err := s.accounts.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list accounts: %w", err)
	}

	midnight := s.startOfDay()
	now := s.now().UTC()
	fixed := 0

	for _, id := range ids {
		total, err := s.ledger.SumPointsByUserSince(ctx, id, time.Time{})
		if err != nil {
			return fixed, fmt.Errorf("sum total points for %s: %w", id, err)
		}
		daily, err := s.ledger.SumPointsByUserSince(ctx, id, midnight)
		if err != nil {
			return fixed, fmt.Errorf("sum daily points for %s: %w", id, err)
		}
		discovered, err := s.ledger.CountDiscoveriesByUser(ctx, id)
		if err != nil {
			return fixed, fmt.Errorf("count discoveries for %s: %w", id, err)
		}

		if err := s.accounts.SetAggregates(ctx, id, total, daily, discovered, now); err != nil {
			return fixed, fmt.Errorf("set aggregates for %s: %w", id, err)
		}
		fixed++
	}

	s.log.Info("aggregates reconciled", "accounts", fixed)
	return fixed, nil
}
