package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/ai"
	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/internal/quota"
	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. Search
// ---------------------------------------------------------------------------

// Search looks the term up by canonical key and, on a miss, runs the
// discovery pipeline: quota checks, AI analysis, schema and policy
// validation, entry creation and (for authenticated callers) the
// discovery award. Exactly one entry ever exists per key: a concurrent
// discovery race is resolved by the store, and the loser receives the
// winner's entry with no points.
func (s *Service) Search(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	if !domain.IsWellFormed(term) {
		return nil, domain.NewValidationError("word",
			"Cuvântul trebuie să aibă 2-50 de caractere românești și cel puțin o vocală.")
	}

	key := domain.Normalize(term)

	entry, err := s.words.Get(ctx, key)
	if err == nil {
		s.logSearch(ctx, term, key, true)
		return &SearchResult{Entry: entry}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	s.logSearch(ctx, term, key, false)
	return s.discover(ctx, term, key)
}

// discover runs the generation half of the pipeline for a missed key.
func (s *Service) discover(ctx context.Context, term, key string) (*SearchResult, error) {
	userID, authed := ctxutil.UserIDFromCtx(ctx)

	if !authed && !s.cfg.AllowAnonymous {
		return nil, domain.NewPolicyError(domain.ErrUnauthorized,
			"Autentifică-te pentru a descoperi cuvinte noi.")
	}

	// Ledger checks before spending an AI call. Confidence is unknown at
	// this point, so the floor check is skipped by passing 1.
	if authed {
		if err := s.points.ValidateDiscovery(ctx, userID, key, 1); err != nil {
			return nil, err
		}
	}

	if err := s.consumeAIQuota(ctx, userID, authed); err != nil {
		return nil, err
	}

	analysis, err := s.ai.Analyze(ctx, term)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, domain.NewPolicyError(domain.ErrUnavailable,
				"Serviciul de analiză nu este disponibil momentan. Mai încearcă în câteva minute.")
		}
		return nil, err
	}

	if !analysis.IsValid {
		return nil, domain.NewValidationError("word",
			"Acesta nu pare să fie un cuvânt valid în limba română.")
	}
	if analysis.Confidence < s.cfg.MinConfidence {
		return nil, domain.NewValidationError("word",
			"Analiza AI este prea incertă pentru a adăuga acest cuvânt în dicționar.")
	}

	var discoverer *uuid.UUID
	if authed {
		discoverer = &userID
	}
	entry := ai.ToWordEntry(analysis, key, term, s.aiModel, discoverer, s.now().UTC())

	if err := s.words.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost the creation race: serve the winner's entry, no points.
			existing, getErr := s.words.Get(ctx, key)
			if getErr != nil {
				return nil, fmt.Errorf("reload raced word: %w", getErr)
			}
			return &SearchResult{Entry: existing}, nil
		}
		return nil, fmt.Errorf("create word: %w", err)
	}

	result := &SearchResult{Entry: entry, IsNew: true,
		Message: "Felicitări! Ai descoperit un cuvânt nou."}

	if authed {
		contribution, awardErr := s.points.AwardDiscovery(ctx, userID, key)
		switch {
		case awardErr == nil:
			result.PointsAwarded = contribution.Points
			if left, remErr := s.points.RemainingDiscoveries(ctx, userID); remErr == nil {
				result.Message = fmt.Sprintf(
					"Felicitări! Ai descoperit un cuvânt nou. Mai poți descoperi %d cuvinte astăzi.", left)
			}
		case errors.Is(awardErr, domain.ErrQuotaExceeded), errors.Is(awardErr, domain.ErrAlreadyExists):
			// The word stays; only the credit is withheld.
			s.log.Info("discovery not credited", "user_id", userID, "word_key", key, "reason", awardErr.Error())
		default:
			s.log.Error("discovery award failed", "user_id", userID, "word_key", key, "error", awardErr.Error())
		}
	}

	s.log.Info("word discovered", "word_key", key,
		"confidence", analysis.Confidence, "authenticated", authed)
	return result, nil
}

// consumeAIQuota enforces the daily AI-call ceiling, keyed by user ID for
// authenticated callers and client IP for anonymous ones. The window runs
// to UTC midnight so the quota resets with the discovery day.
func (s *Service) consumeAIQuota(ctx context.Context, userID uuid.UUID, authed bool) error {
	identity := ctxutil.ClientIPFromCtx(ctx)
	ceiling := s.cfg.AnonymousDailyQuota
	if authed {
		identity = userID.String()
		ceiling = s.cfg.AIDailyQuota
	}

	quotaKey := quota.EndpointKey("ai", identity)
	allowed, err := s.quota.TryConsume(ctx, quotaKey, ceiling, quota.UntilMidnight(s.now().UTC()))
	if err != nil {
		return fmt.Errorf("ai quota: %w", err)
	}
	if !allowed {
		return domain.NewPolicyError(domain.ErrQuotaExceeded,
			fmt.Sprintf("Ai atins limita zilnică de %d analize AI. Revino mâine!", ceiling))
	}
	if left, err := s.quota.Remaining(ctx, quotaKey, ceiling); err == nil {
		s.log.Debug("ai quota consumed", "identity", identity, "remaining", left)
	}
	return nil
}

// logSearch appends a search log record. Best-effort: failures are logged
// and never fail the search.
func (s *Service) logSearch(ctx context.Context, term, key string, found bool) {
	record := &domain.SearchLog{
		ID:             uuid.New(),
		Term:           term,
		NormalizedTerm: key,
		Found:          found,
		CreatedAt:      s.now().UTC(),
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		record.UserID = &userID
	}
	if found {
		record.WordKey = &key
	}

	if err := s.logs.Create(ctx, record); err != nil {
		s.log.Warn("search log write failed", "term", term, "error", err.Error())
	}
}
