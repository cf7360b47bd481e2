package dictionary

import (
	"context"
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 2. Get
// ---------------------------------------------------------------------------

// Get returns an existing entry by raw term or canonical key. Unlike
// Search it never generates: a miss is domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, term string) (*domain.WordEntry, error) {
	key := domain.Normalize(term)
	if key == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	entry, err := s.words.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return entry, nil
}
