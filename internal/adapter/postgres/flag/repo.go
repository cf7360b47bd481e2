// Package flag implements the word flag repository using PostgreSQL.
package flag

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides flag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new flag.
func (r *Repo) Create(ctx context.Context, f *domain.Flag) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("flags").
		Columns("id", "word_key", "user_id", "reason", "status", "created_at").
		Values(f.ID, f.WordKey, f.UserID, f.Reason, f.Status, f.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "flag", f.ID.String())
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "flag", f.ID.String())
	}
	return nil
}

// ListOpenByWord returns the open flags on a word, oldest first.
func (r *Repo) ListOpenByWord(ctx context.Context, wordKey string) ([]domain.Flag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(
		"id", "word_key", "user_id", "reason", "status",
		"created_at", "resolved_at", "resolved_by", "notes",
	).
		From("flags").
		Where(sq.Eq{"word_key": wordKey, "status": domain.FlagStatusOpen}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "flag", wordKey)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "flag", wordKey)
	}
	defer rows.Close()

	var out []domain.Flag
	for rows.Next() {
		var f domain.Flag
		if err := rows.Scan(&f.ID, &f.WordKey, &f.UserID, &f.Reason, &f.Status,
			&f.CreatedAt, &f.ResolvedAt, &f.ResolvedBy, &f.Notes); err != nil {
			return nil, postgres.MapError(err, "flag", wordKey)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "flag", wordKey)
	}
	return out, nil
}
