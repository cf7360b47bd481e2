package flag

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/internal/quota"
	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. Submit
// ---------------------------------------------------------------------------

// Submit records a report against a word. Requires authentication, a
// trimmed reason of at least ten characters, and an existing word; flag
// submissions are rate limited per user.
func (s *Service) Submit(ctx context.Context, wordKey, reason string) (*domain.Flag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minReasonLen {
		return nil, domain.NewValidationError("reason",
			"Motivul trebuie să aibă cel puțin 10 caractere.")
	}

	allowed, err := s.quota.TryConsume(ctx, quota.EndpointKey("flag", userID.String()),
		s.rateCfg.FlagsPerWindow, s.rateCfg.FlagWindow)
	if err != nil {
		return nil, fmt.Errorf("flag rate limit: %w", err)
	}
	if !allowed {
		return nil, domain.NewPolicyError(domain.ErrRateLimited,
			"Ai raportat prea multe cuvinte recent. Mai încearcă peste o oră.")
	}

	if _, err := s.words.Get(ctx, wordKey); err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}

	// One open report per user per word; a second one adds no signal.
	open, err := s.flags.ListOpenByWord(ctx, wordKey)
	if err != nil {
		return nil, fmt.Errorf("load open flags: %w", err)
	}
	for _, f := range open {
		if f.UserID == userID {
			return nil, domain.NewPolicyError(domain.ErrAlreadyExists,
				"Ai raportat deja acest cuvânt. Raportul tău este în curs de analiză.")
		}
	}

	flag := &domain.Flag{
		ID:        uuid.New(),
		WordKey:   wordKey,
		UserID:    userID,
		Reason:    reason,
		Status:    domain.FlagStatusOpen,
		CreatedAt: s.now().UTC(),
	}

	if err := s.flags.Create(ctx, flag); err != nil {
		return nil, fmt.Errorf("create flag: %w", err)
	}

	s.log.Info("word flagged", "word_key", wordKey, "user_id", userID)
	return flag, nil
}
