package flag

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

type mockFlagRepo struct {
	CreateFunc         func(ctx context.Context, f *domain.Flag) error
	ListOpenByWordFunc func(ctx context.Context, wordKey string) ([]domain.Flag, error)
}

func (m *mockFlagRepo) Create(ctx context.Context, f *domain.Flag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}

func (m *mockFlagRepo) ListOpenByWord(ctx context.Context, wordKey string) ([]domain.Flag, error) {
	if m.ListOpenByWordFunc != nil {
		return m.ListOpenByWordFunc(ctx, wordKey)
	}
	return nil, nil
}

type mockWordRepo struct {
	GetFunc func(ctx context.Context, key string) (*domain.WordEntry, error)
}

func (m *mockWordRepo) Get(ctx context.Context, key string) (*domain.WordEntry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return &domain.WordEntry{Key: key}, nil
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

func newTestService(flags *mockFlagRepo, words *mockWordRepo, q *mockQuota) *Service {
	return NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		flags, words, q,
		config.RateLimitConfig{FlagsPerWindow: 5, FlagWindow: time.Hour},
	)
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

// ===========================================================================
// Submit
// ===========================================================================

func TestSubmit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates open flag", func(t *testing.T) {
		t.Parallel()
		var created *domain.Flag
		flags := &mockFlagRepo{
			CreateFunc: func(ctx context.Context, f *domain.Flag) error {
				created = f
				return nil
			},
		}
		s := newTestService(flags, &mockWordRepo{}, &mockQuota{})

		got, err := s.Submit(authedCtx(userID), "caine", "Definiția a doua este greșită")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, domain.FlagStatusOpen, created.Status)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, got.ID, created.ID)
	})

	t.Run("requires auth", func(t *testing.T) {
		t.Parallel()
		s := newTestService(&mockFlagRepo{}, &mockWordRepo{}, &mockQuota{})
		_, err := s.Submit(context.Background(), "caine", "Definiția a doua este greșită")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects short reason after trimming", func(t *testing.T) {
		t.Parallel()
		s := newTestService(&mockFlagRepo{}, &mockWordRepo{}, &mockQuota{})
		_, err := s.Submit(authedCtx(userID), "caine", "   scurt    ")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()
		q := &mockQuota{
			TryConsumeFunc: func(ctx context.Context, key string, ceiling int, window time.Duration) (bool, error) {
				return false, nil
			},
		}
		s := newTestService(&mockFlagRepo{}, &mockWordRepo{}, q)
		_, err := s.Submit(authedCtx(userID), "caine", "Definiția a doua este greșită")
		require.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("rejects second open report from same user", func(t *testing.T) {
		t.Parallel()
		flags := &mockFlagRepo{
			ListOpenByWordFunc: func(ctx context.Context, wordKey string) ([]domain.Flag, error) {
				return []domain.Flag{{WordKey: wordKey, UserID: userID, Status: domain.FlagStatusOpen}}, nil
			},
			CreateFunc: func(ctx context.Context, f *domain.Flag) error {
				t.Error("duplicate report must not be persisted")
				return nil
			},
		}
		s := newTestService(flags, &mockWordRepo{}, &mockQuota{})
		_, err := s.Submit(authedCtx(userID), "caine", "Definiția a doua este greșită")
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("open report from another user does not block", func(t *testing.T) {
		t.Parallel()
		flags := &mockFlagRepo{
			ListOpenByWordFunc: func(ctx context.Context, wordKey string) ([]domain.Flag, error) {
				return []domain.Flag{{WordKey: wordKey, UserID: uuid.New(), Status: domain.FlagStatusOpen}}, nil
			},
		}
		s := newTestService(flags, &mockWordRepo{}, &mockQuota{})
		_, err := s.Submit(authedCtx(userID), "caine", "Definiția a doua este greșită")
		require.NoError(t, err)
	})

	t.Run("word must exist", func(t *testing.T) {
		t.Parallel()
		words := &mockWordRepo{
			GetFunc: func(ctx context.Context, key string) (*domain.WordEntry, error) {
				return nil, domain.ErrNotFound
			},
		}
		s := newTestService(&mockFlagRepo{}, words, &mockQuota{})
		_, err := s.Submit(authedCtx(userID), "nicaieri", "Definiția a doua este greșită")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
