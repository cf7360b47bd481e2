package dictionary

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dexai-ro/dexai-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 3. Autocomplete
// ---------------------------------------------------------------------------

// Autocomplete returns up to ten suggestions matching the normalized
// term, prefix matches ranked first. Terms shorter than two runes
// return an empty list rather than an error.
func (s *Service) Autocomplete(ctx context.Context, term string) ([]domain.Suggestion, error) {
	normalized := domain.Normalize(term)
	if utf8.RuneCountInString(normalized) < minPrefixRunes {
		return []domain.Suggestion{}, nil
	}

	suggestions, err := s.words.Suggest(ctx, normalized, autocompleteLimit)
	if err != nil {
		return nil, fmt.Errorf("suggest words: %w", err)
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	return suggestions, nil
}
