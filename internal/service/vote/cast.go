package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/internal/quota"
	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. Cast
// ---------------------------------------------------------------------------

// Cast records, changes or retracts the caller's vote on a word. kind nil
// retracts. The vote row, the word counters and the verification flags
// move together in one transaction, and consensus is re-derived from the
// counters the update returned, never from stale reads.
//
// Re-casting the identical kind is a no-op and does not touch counters.
func (s *Service) Cast(ctx context.Context, wordKey string, kind *domain.VoteKind) (*State, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if kind != nil && !kind.IsValid() {
		return nil, domain.NewValidationError("voteType", "unknown vote kind")
	}

	allowed, err := s.quota.TryConsume(ctx, quota.EndpointKey("vote", userID.String()),
		s.rateCfg.VotesPerWindow, s.rateCfg.VoteWindow)
	if err != nil {
		return nil, fmt.Errorf("vote rate limit: %w", err)
	}
	if !allowed {
		return nil, domain.NewPolicyError(domain.ErrRateLimited,
			"Prea multe voturi într-un interval scurt. Mai încearcă peste un minut.")
	}

	word, err := s.words.Get(ctx, wordKey)
	if err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}

	state := &State{WordKey: wordKey, Counts: word.Counts, UserVote: kind,
		Verified: word.Verified, CommunityVerified: word.CommunityVerified}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var oldKind *domain.VoteKind
		existing, err := s.votes.Get(txCtx, wordKey, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load existing vote: %w", err)
		}
		if existing != nil {
			oldKind = &existing.Kind
		}

		deltas := domain.CounterDeltas(oldKind, kind)
		if deltas.IsZero() {
			return nil
		}

		now := s.now().UTC()
		if kind == nil {
			if err := s.votes.Delete(txCtx, wordKey, userID); err != nil {
				return fmt.Errorf("delete vote: %w", err)
			}
		} else {
			v := &domain.Vote{WordKey: wordKey, UserID: userID, Kind: *kind, CreatedAt: now, UpdatedAt: now}
			if existing != nil {
				v.CreatedAt = existing.CreatedAt
			}
			if err := s.votes.Upsert(txCtx, v); err != nil {
				return fmt.Errorf("upsert vote: %w", err)
			}
		}

		counts, err := s.words.ApplyVoteDeltas(txCtx, wordKey, deltas)
		if err != nil {
			return fmt.Errorf("apply counter deltas: %w", err)
		}
		state.Counts = counts

		meets := s.thresholds.MeetsConsensus(counts)
		switch {
		case meets && !word.CommunityVerified:
			if err := s.words.SetVerification(txCtx, wordKey, true, true); err != nil {
				return fmt.Errorf("promote verification: %w", err)
			}
			state.Verified, state.CommunityVerified = true, true
			s.log.Info("word reached community consensus", "word_key", wordKey,
				"validations", counts.Validations, "errors", counts.Errors)
		case !meets && word.CommunityVerified:
			if err := s.words.SetVerification(txCtx, wordKey, false, false); err != nil {
				return fmt.Errorf("demote verification: %w", err)
			}
			state.Verified, state.CommunityVerified = false, false
			s.log.Info("word lost community consensus", "word_key", wordKey,
				"validations", counts.Validations, "errors", counts.Errors)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return state, nil
}
