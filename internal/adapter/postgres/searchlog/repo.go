// Package searchlog implements the search log repository using PostgreSQL.
package searchlog

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides search log persistence backed by PostgreSQL.
// Logging is best-effort: callers treat failures as non-fatal.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one search log record.
func (r *Repo) Create(ctx context.Context, l *domain.SearchLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("search_logs").
		Columns("id", "term", "normalized_term", "user_id", "found", "word_key", "created_at").
		Values(l.ID, l.Term, l.NormalizedTerm, l.UserID, l.Found, l.WordKey, l.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "search_log", l.ID.String())
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "search_log", l.ID.String())
	}
	return nil
}
