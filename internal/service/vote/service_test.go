package vote

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexai-ro/dexai-backend/internal/config"
	"github.com/dexai-ro/dexai-backend/internal/domain"
	"github.com/dexai-ro/dexai-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordRepo struct {
	GetFunc             func(ctx context.Context, key string) (*domain.WordEntry, error)
	ApplyVoteDeltasFunc func(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error)
	SetVerificationFunc func(ctx context.Context, key string, verified, communityVerified bool) error
}

func (m *mockWordRepo) Get(ctx context.Context, key string) (*domain.WordEntry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) ApplyVoteDeltas(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error) {
	if m.ApplyVoteDeltasFunc != nil {
		return m.ApplyVoteDeltasFunc(ctx, key, d)
	}
	return domain.VoteCounts{}, nil
}

func (m *mockWordRepo) SetVerification(ctx context.Context, key string, verified, communityVerified bool) error {
	if m.SetVerificationFunc != nil {
		return m.SetVerificationFunc(ctx, key, verified, communityVerified)
	}
	return nil
}

type mockVoteRepo struct {
	GetFunc    func(ctx context.Context, wordKey string, userID uuid.UUID) (*domain.Vote, error)
	UpsertFunc func(ctx context.Context, v *domain.Vote) error
	DeleteFunc func(ctx context.Context, wordKey string, userID uuid.UUID) error
}

func (m *mockVoteRepo) Get(ctx context.Context, wordKey string, userID uuid.UUID) (*domain.Vote, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, wordKey, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVoteRepo) Upsert(ctx context.Context, v *domain.Vote) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, v)
	}
	return nil
}

func (m *mockVoteRepo) Delete(ctx context.Context, wordKey string, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, wordKey, userID)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockQuota struct {
	TryConsumeFunc func(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error)
}

func (m *mockQuota) TryConsume(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error) {
	if m.TryConsumeFunc != nil {
		return m.TryConsumeFunc(ctx, key, ceiling, window)
	}
	return true, nil
}

func newTestService(words *mockWordRepo, votes *mockVoteRepo, q *mockQuota) *Service {
	return NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		words, votes, &mockTxManager{}, q,
		config.ConsensusConfig{MinValidations: 5, MaxErrors: 3},
		config.RateLimitConfig{VotesPerWindow: 20, VoteWindow: time.Minute},
	)
}

func wordWith(counts domain.VoteCounts, communityVerified bool) *mockWordRepo {
	return &mockWordRepo{
		GetFunc: func(ctx context.Context, key string) (*domain.WordEntry, error) {
			return &domain.WordEntry{
				Key:               key,
				Counts:            counts,
				Verified:          communityVerified,
				CommunityVerified: communityVerified,
			}, nil
		},
		ApplyVoteDeltasFunc: func(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error) {
			counts.Likes += d.Likes
			counts.Dislikes += d.Dislikes
			counts.Validations += d.Validations
			counts.Errors += d.Errors
			return counts, nil
		},
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func kindPtr(k domain.VoteKind) *domain.VoteKind { return &k }

// ===========================================================================
// Cast
// ===========================================================================

func TestCast_RequiresAuth(t *testing.T) {
	t.Parallel()

	s := newTestService(wordWith(domain.VoteCounts{}, false), &mockVoteRepo{}, &mockQuota{})
	_, err := s.Cast(context.Background(), "caine", kindPtr(domain.VoteKindLike))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCast_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	s := newTestService(wordWith(domain.VoteCounts{}, false), &mockVoteRepo{}, &mockQuota{})
	bad := domain.VoteKind("upvote")
	_, err := s.Cast(authedCtx(uuid.New()), "caine", &bad)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCast_RateLimited(t *testing.T) {
	t.Parallel()

	q := &mockQuota{
		TryConsumeFunc: func(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error) {
			return false, nil
		},
	}
	s := newTestService(wordWith(domain.VoteCounts{}, false), &mockVoteRepo{}, q)
	_, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindLike))
	require.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestCast_WordNotFound(t *testing.T) {
	t.Parallel()

	s := newTestService(&mockWordRepo{}, &mockVoteRepo{}, &mockQuota{})
	_, err := s.Cast(authedCtx(uuid.New()), "nicaieri", kindPtr(domain.VoteKindLike))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCast_FirstVote(t *testing.T) {
	t.Parallel()

	var upserted *domain.Vote
	votes := &mockVoteRepo{
		UpsertFunc: func(ctx context.Context, v *domain.Vote) error {
			upserted = v
			return nil
		},
	}
	s := newTestService(wordWith(domain.VoteCounts{}, false), votes, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindLike))
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Equal(t, domain.VoteKindLike, upserted.Kind)
	assert.Equal(t, 1, state.Counts.Likes)
	assert.False(t, state.CommunityVerified)
}

func TestCast_ChangeKindMovesBothCounters(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	votes := &mockVoteRepo{
		GetFunc: func(ctx context.Context, wordKey string, id uuid.UUID) (*domain.Vote, error) {
			return &domain.Vote{WordKey: wordKey, UserID: id, Kind: domain.VoteKindLike}, nil
		},
	}
	s := newTestService(wordWith(domain.VoteCounts{Likes: 4}, false), votes, &mockQuota{})

	state, err := s.Cast(authedCtx(userID), "caine", kindPtr(domain.VoteKindDislike))
	require.NoError(t, err)
	assert.Equal(t, 3, state.Counts.Likes)
	assert.Equal(t, 1, state.Counts.Dislikes)
}

func TestCast_SameKindIsNoOp(t *testing.T) {
	t.Parallel()

	applied := false
	words := wordWith(domain.VoteCounts{Likes: 2}, false)
	inner := words.ApplyVoteDeltasFunc
	words.ApplyVoteDeltasFunc = func(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error) {
		applied = true
		return inner(ctx, key, d)
	}
	votes := &mockVoteRepo{
		GetFunc: func(ctx context.Context, wordKey string, id uuid.UUID) (*domain.Vote, error) {
			return &domain.Vote{WordKey: wordKey, UserID: id, Kind: domain.VoteKindLike}, nil
		},
	}
	s := newTestService(words, votes, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindLike))
	require.NoError(t, err)
	assert.False(t, applied, "identical re-vote must not touch counters")
	assert.Equal(t, 2, state.Counts.Likes)
}

func TestCast_RetractDeletesVote(t *testing.T) {
	t.Parallel()

	deleted := false
	votes := &mockVoteRepo{
		GetFunc: func(ctx context.Context, wordKey string, id uuid.UUID) (*domain.Vote, error) {
			return &domain.Vote{WordKey: wordKey, UserID: id, Kind: domain.VoteKindLike}, nil
		},
		DeleteFunc: func(ctx context.Context, wordKey string, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	s := newTestService(wordWith(domain.VoteCounts{Likes: 1}, false), votes, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", nil)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, state.Counts.Likes)
	assert.Nil(t, state.UserVote)
}

// ===========================================================================
// Consensus transitions
// ===========================================================================

func TestCast_FifthValidationPromotes(t *testing.T) {
	t.Parallel()

	var promoted bool
	words := wordWith(domain.VoteCounts{Validations: 4}, false)
	words.SetVerificationFunc = func(ctx context.Context, key string, verified, communityVerified bool) error {
		promoted = verified && communityVerified
		return nil
	}
	s := newTestService(words, &mockVoteRepo{}, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindValidate))
	require.NoError(t, err)
	assert.True(t, promoted)
	assert.True(t, state.CommunityVerified)
	assert.True(t, state.Verified)
	assert.Equal(t, 5, state.Counts.Validations)
}

func TestCast_RetractionBelowFloorDemotes(t *testing.T) {
	t.Parallel()

	var demoted bool
	words := wordWith(domain.VoteCounts{Validations: 5}, true)
	words.SetVerificationFunc = func(ctx context.Context, key string, verified, communityVerified bool) error {
		demoted = !verified && !communityVerified
		return nil
	}
	votes := &mockVoteRepo{
		GetFunc: func(ctx context.Context, wordKey string, id uuid.UUID) (*domain.Vote, error) {
			return &domain.Vote{WordKey: wordKey, UserID: id, Kind: domain.VoteKindValidate}, nil
		},
	}
	s := newTestService(words, votes, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", nil)
	require.NoError(t, err)
	assert.True(t, demoted)
	assert.False(t, state.CommunityVerified)
	assert.Equal(t, 4, state.Counts.Validations)
}

func TestCast_ThirdErrorDemotesDespiteValidations(t *testing.T) {
	t.Parallel()

	var demoted bool
	words := wordWith(domain.VoteCounts{Validations: 6, Errors: 2}, true)
	words.SetVerificationFunc = func(ctx context.Context, key string, verified, communityVerified bool) error {
		demoted = !verified && !communityVerified
		return nil
	}
	s := newTestService(words, &mockVoteRepo{}, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindReportError))
	require.NoError(t, err)
	assert.True(t, demoted)
	assert.Equal(t, 3, state.Counts.Errors)
}

func TestCast_NoRedundantVerificationWrite(t *testing.T) {
	t.Parallel()

	wrote := false
	words := wordWith(domain.VoteCounts{Validations: 6}, true)
	words.SetVerificationFunc = func(ctx context.Context, key string, verified, communityVerified bool) error {
		wrote = true
		return nil
	}
	s := newTestService(words, &mockVoteRepo{}, &mockQuota{})

	state, err := s.Cast(authedCtx(uuid.New()), "caine", kindPtr(domain.VoteKindLike))
	require.NoError(t, err)
	assert.False(t, wrote, "verification flags unchanged, no write expected")
	assert.True(t, state.CommunityVerified)
}

// ===========================================================================
// StateFor
// ===========================================================================

func TestStateFor(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	votes := &mockVoteRepo{
		GetFunc: func(ctx context.Context, wordKey string, id uuid.UUID) (*domain.Vote, error) {
			if id == userID {
				return &domain.Vote{WordKey: wordKey, UserID: id, Kind: domain.VoteKindValidate}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	s := newTestService(wordWith(domain.VoteCounts{Likes: 3, Validations: 2}, false), votes, &mockQuota{})

	t.Run("authenticated caller sees own vote", func(t *testing.T) {
		t.Parallel()
		state, err := s.StateFor(authedCtx(userID), "caine")
		require.NoError(t, err)
		require.NotNil(t, state.UserVote)
		assert.Equal(t, domain.VoteKindValidate, *state.UserVote)
		assert.Equal(t, 3, state.Counts.Likes)
	})

	t.Run("anonymous caller sees counters only", func(t *testing.T) {
		t.Parallel()
		state, err := s.StateFor(context.Background(), "caine")
		require.NoError(t, err)
		assert.Nil(t, state.UserVote)
	})
}
