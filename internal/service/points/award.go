package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 2. AwardDiscovery / Award
// ---------------------------------------------------------------------------

// AwardDiscovery credits a user for discovering a word: one ledger record
// plus an atomic aggregate bump, inside a single transaction. The daily
// ceiling is re-read from the ledger at award time.
//
// The account row must already exist; points are never awarded to
// identities the gamification system does not know about.
func (s *Service) AwardDiscovery(ctx context.Context, userID uuid.UUID, wordKey string) (*domain.Contribution, error) {
	today, err := s.ledger.CountByUserSince(ctx, userID, domain.ContributionDiscovery, s.startOfDay())
	if err != nil {
		return nil, fmt.Errorf("count daily discoveries: %w", err)
	}
	if today >= s.cfg.MaxDaily {
		return nil, domain.NewPolicyError(domain.ErrQuotaExceeded,
			fmt.Sprintf("Ai atins limita zilnică de %d descoperiri. Revino mâine!", s.cfg.MaxDaily))
	}

	return s.award(ctx, userID, wordKey, domain.ContributionDiscovery, nil)
}

// Award appends a non-discovery ledger record (example, synonym, antonym,
// definition enhancement, error report) and bumps the aggregates by the
// kind's point value.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, wordKey string, kind domain.ContributionKind, payload map[string]any) (*domain.Contribution, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown contribution kind")
	}
	if kind == domain.ContributionDiscovery {
		return nil, domain.NewValidationError("kind", "discovery goes through AwardDiscovery")
	}
	return s.award(ctx, userID, wordKey, kind, payload)
}

func (s *Service) award(ctx context.Context, userID uuid.UUID, wordKey string, kind domain.ContributionKind, payload map[string]any) (*domain.Contribution, error) {
	if _, err := s.accounts.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account %s missing: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	now := s.now().UTC()
	contribution := &domain.Contribution{
		ID:        uuid.New(),
		UserID:    userID,
		WordKey:   wordKey,
		Kind:      kind,
		Points:    kind.Points(),
		Payload:   payload,
		CreatedAt: now,
	}

	delta := domain.PointsDelta{Points: contribution.Points}
	if kind == domain.ContributionDiscovery {
		delta.WordsDiscovered = 1
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ledger.Create(txCtx, contribution); err != nil {
			return fmt.Errorf("append ledger record: %w", err)
		}
		if err := s.accounts.ApplyDelta(txCtx, userID, delta, now); err != nil {
			return fmt.Errorf("apply aggregate delta: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// A concurrent discovery of the same word lost the partial-index
		// race: credit goes to exactly one of the two requests.
		if kind == domain.ContributionDiscovery && errors.Is(txErr, domain.ErrAlreadyExists) {
			return nil, domain.NewPolicyError(domain.ErrAlreadyExists,
				"Ai descoperit deja acest cuvânt.")
		}
		return nil, txErr
	}

	s.log.Info("contribution awarded",
		"user_id", userID,
		"word_key", wordKey,
		"kind", kind.String(),
		"points", contribution.Points,
	)
	return contribution, nil
}
