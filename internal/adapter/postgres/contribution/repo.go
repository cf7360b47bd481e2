// Package contribution implements the append-only points ledger using PostgreSQL.
package contribution

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides ledger persistence backed by PostgreSQL. Records are
// append-only; there is deliberately no update or delete operation.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one ledger record. A second discovery record for the
// same (user, word) pair violates the partial unique index and surfaces
// as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Contribution) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("contributions").
		Columns("id", "user_id", "word_key", "kind", "points", "payload", "created_at").
		Values(c.ID, c.UserID, c.WordKey, c.Kind, c.Points, c.Payload, c.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "contribution", c.ID.String())
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "contribution", c.ID.String())
	}
	return nil
}

// HasDiscovery reports whether the user already holds the discovery
// credit for the word.
func (r *Repo) HasDiscovery(ctx context.Context, userID uuid.UUID, wordKey string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("1").
		From("contributions").
		Where(sq.Eq{"user_id": userID, "word_key": wordKey, "kind": domain.ContributionDiscovery}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "contribution", userID.String())
	}

	var one int
	err = q.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, postgres.MapError(err, "contribution", userID.String())
	}
	return true, nil
}

// CountByUserSince counts ledger records of one kind appended by the user
// at or after the cutoff. Used for the daily discovery quota and the
// burst check, which always read the ledger instead of a cached counter.
func (r *Repo) CountByUserSince(ctx context.Context, userID uuid.UUID, kind domain.ContributionKind, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("COUNT(*)").
		From("contributions").
		Where(sq.Eq{"user_id": userID, "kind": kind}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "contribution", userID.String())
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "contribution", userID.String())
	}
	return count, nil
}

// SumPointsByUserSince totals the points the user earned at or after the
// cutoff. Pass a zero time for the all-time total. Used by Reconcile to
// recompute aggregates from the ledger.
func (r *Repo) SumPointsByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("COALESCE(SUM(points), 0)").
		From("contributions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "contribution", userID.String())
	}

	var sum float64
	if err := q.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, postgres.MapError(err, "contribution", userID.String())
	}
	return sum, nil
}

// CountDiscoveriesByUser counts the user's all-time discovery records.
func (r *Repo) CountDiscoveriesByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.CountByUserSince(ctx, userID, domain.ContributionDiscovery, time.Time{})
}
