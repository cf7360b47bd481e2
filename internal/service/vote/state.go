package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. StateFor
// ---------------------------------------------------------------------------

// StateFor returns the word's counters, verification flags and the
// caller's own vote. Anonymous callers get a nil UserVote.
func (s *Service) StateFor(ctx context.Context, wordKey string) (*State, error) {
	word, err := s.words.Get(ctx, wordKey)
	if err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}

	state := &State{
		WordKey:           wordKey,
		Counts:            word.Counts,
		Verified:          word.Verified,
		CommunityVerified: word.CommunityVerified,
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		v, err := s.votes.Get(ctx, wordKey, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("load user vote: %w", err)
		}
		if v != nil {
			state.UserVote = &v.Kind
		}
	}

	return state, nil
}
