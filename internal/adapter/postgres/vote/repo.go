// Package vote implements the per-user vote repository using PostgreSQL.
package vote

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides vote persistence backed by PostgreSQL. A vote's identity
// is the (word_key, user_id) pair: one active vote per user per word.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the active vote of a user on a word.
func (r *Repo) Get(ctx context.Context, wordKey string, userID uuid.UUID) (*domain.Vote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("word_key", "user_id", "kind", "created_at", "updated_at").
		From("word_votes").
		Where(sq.Eq{"word_key": wordKey, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "vote", voteID(wordKey, userID))
	}

	var v domain.Vote
	err = q.QueryRow(ctx, query, args...).
		Scan(&v.WordKey, &v.UserID, &v.Kind, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "vote", voteID(wordKey, userID))
	}
	return &v, nil
}

// Upsert stores the vote, replacing any previous vote by the same user on
// the same word. The original created_at survives a kind change.
func (r *Repo) Upsert(ctx context.Context, v *domain.Vote) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("word_votes").
		Columns("word_key", "user_id", "kind", "created_at", "updated_at").
		Values(v.WordKey, v.UserID, v.Kind, v.CreatedAt, v.UpdatedAt).
		Suffix("ON CONFLICT (word_key, user_id) DO UPDATE SET kind = EXCLUDED.kind, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "vote", voteID(v.WordKey, v.UserID))
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "vote", voteID(v.WordKey, v.UserID))
	}
	return nil
}

// Delete removes a user's vote on a word. Deleting an absent vote returns
// domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, wordKey string, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("word_votes").
		Where(sq.Eq{"word_key": wordKey, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "vote", voteID(wordKey, userID))
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "vote", voteID(wordKey, userID))
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "vote", voteID(wordKey, userID))
	}
	return nil
}

func voteID(wordKey string, userID uuid.UUID) string {
	return wordKey + "_" + userID.String()
}
