// Package useraccount implements the gamification aggregates repository using PostgreSQL.
package useraccount

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user aggregate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns the account with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(
		"id", "display_name", "avatar_url",
		"total_points", "daily_points", "words_discovered",
		"created_at", "updated_at",
	).
		From("user_accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_account", id.String())
	}

	var a domain.UserAccount
	err = q.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.DisplayName, &a.AvatarURL,
		&a.TotalPoints, &a.DailyPoints, &a.WordsDiscovered,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_account", id.String())
	}
	return &a, nil
}

// ApplyDelta atomically shifts the account aggregates. The read-modify-write
// happens inside the UPDATE, so concurrent awards never lose increments.
func (r *Repo) ApplyDelta(ctx context.Context, id uuid.UUID, d domain.PointsDelta, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("user_accounts").
		Set("total_points", sq.Expr("total_points + ?", d.Points)).
		Set("daily_points", sq.Expr("daily_points + ?", d.Points)).
		Set("words_discovered", sq.Expr("words_discovered + ?", d.WordsDiscovered)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user_account", id.String())
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user_account", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user_account", id.String())
	}
	return nil
}

// SetAggregates overwrites the aggregates with ledger-derived values.
// Used by Reconcile after recomputing from the contribution ledger.
func (r *Repo) SetAggregates(ctx context.Context, id uuid.UUID, totalPoints, dailyPoints float64, wordsDiscovered int, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("user_accounts").
		Set("total_points", totalPoints).
		Set("daily_points", dailyPoints).
		Set("words_discovered", wordsDiscovered).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user_account", id.String())
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user_account", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user_account", id.String())
	}
	return nil
}

// ListIDs returns every account ID. Used by the reconcile job.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("id").From("user_accounts").OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "user_account", "")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}
	return ids, nil
}

// Top returns the highest-scoring accounts in total_points order, ties
// broken by earlier registration. Rank is filled in by position.
func (r *Repo) Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(
		"id", "display_name", "avatar_url", "total_points", "words_discovered",
	).
		From("user_accounts").
		OrderBy("total_points DESC", "created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}
	defer rows.Close()

	var out []domain.LeaderboardRow
	for rows.Next() {
		var row domain.LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.DisplayName, &row.AvatarURL, &row.TotalPoints, &row.WordsDiscovered); err != nil {
			return nil, postgres.MapError(err, "user_account", "")
		}
		row.Rank = len(out) + 1
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user_account", "")
	}
	return out, nil
}
