package points

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 1. ValidateDiscovery
// ---------------------------------------------------------------------------

// ValidateDiscovery decides whether a discovery may be credited, before
// any entry is persisted. Checks run cheapest-first: confidence floor,
// duplicate credit, then the burst window. All reads go to the ledger,
// never to cached aggregates.
//
// A rejection is a *domain.PolicyError carrying the user-facing reason;
// it does not prevent the word itself from being stored.
func (s *Service) ValidateDiscovery(ctx context.Context, userID uuid.UUID, wordKey string, confidence float64) error {
	if confidence < s.cfg.MinConfidence {
		return domain.NewPolicyError(domain.ErrValidation,
			"Analiza AI este prea incertă pentru a valida această descoperire.")
	}

	already, err := s.ledger.HasDiscovery(ctx, userID, wordKey)
	if err != nil {
		return fmt.Errorf("check discovery credit: %w", err)
	}
	if already {
		return domain.NewPolicyError(domain.ErrAlreadyExists,
			"Ai descoperit deja acest cuvânt.")
	}

	cutoff := s.now().UTC().Add(-s.cfg.BurstWindow)
	recent, err := s.ledger.CountByUserSince(ctx, userID, domain.ContributionDiscovery, cutoff)
	if err != nil {
		return fmt.Errorf("count recent discoveries: %w", err)
	}
	if recent >= s.cfg.BurstLimit {
		return domain.NewPolicyError(domain.ErrRateLimited,
			"Prea multe descoperiri într-un interval scurt. Mai încearcă peste un minut.")
	}

	return nil
}
