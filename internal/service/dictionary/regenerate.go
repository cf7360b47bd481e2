package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/ai"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 4. Regenerate
// ---------------------------------------------------------------------------

// Regenerate re-runs the AI analysis for an existing entry and replaces
// its content in place, preserving creation metadata, vote counters and
// verification. Available outside production only; the regeneration
// counter records how many times an entry has been rebuilt.
func (s *Service) Regenerate(ctx context.Context, term string) (*domain.WordEntry, error) {
	if !s.allowRegenerate {
		return nil, domain.NewPolicyError(domain.ErrForbidden,
			"Regenerarea este disponibilă doar în mediul de dezvoltare.")
	}

	key := domain.Normalize(term)
	existing, err := s.words.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}

	analysis, err := s.ai.Analyze(ctx, existing.Display)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, domain.NewPolicyError(domain.ErrUnavailable,
				"Serviciul de analiză nu este disponibil momentan.")
		}
		return nil, err
	}
	if !analysis.IsValid || analysis.Confidence < s.cfg.MinConfidence {
		return nil, domain.NewValidationError("word",
			"Noua analiză nu este suficient de sigură pentru a înlocui conținutul existent.")
	}

	replacement := ai.ToWordEntry(analysis, key, existing.Display, s.aiModel, existing.CreatedByUserID, existing.CreatedAt)
	if err := s.words.ReplaceContent(ctx, replacement, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("replace content: %w", err)
	}

	updated, err := s.words.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reload word: %w", err)
	}

	s.log.Info("word regenerated", "word_key", key,
		"regeneration_count", updated.RegenerationCount)
	return updated, nil
}
