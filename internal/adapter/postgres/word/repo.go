// Package word implements the dictionary entry repository using PostgreSQL.
package word

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dexai-ro/dexai-backend/internal/adapter/postgres"
	"github.com/dexai-ro/dexai-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// entryColumns is the full column set of the words table, in scan order.
var entryColumns = []string{
	"key", "lemma", "display", "part_of_speech",
	"definitions", "examples", "synonyms", "antonyms", "related_words",
	"pronunciation", "syllables", "etymology", "tags",
	"noun_forms", "verb_forms", "adjective_forms",
	"translations", "collocations", "usage_notes",
	"frequency_level", "difficulty_level",
	"created_by", "created_by_user_id", "ai_version", "created_at",
	"verified", "community_verified",
	"likes_count", "dislikes_count", "validations_count", "errors_count",
	"regeneration_count", "last_regenerated_at",
}

// Repo provides dictionary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the entry with the given canonical key.
func (r *Repo) Get(ctx context.Context, key string) (*domain.WordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(entryColumns...).
		From("words").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}

	entry, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	return entry, nil
}

// Create inserts a new entry. Exactly one entry may exist per key: a
// concurrent insert of the same key surfaces as domain.ErrAlreadyExists,
// and the caller is expected to re-read the winner.
func (r *Repo) Create(ctx context.Context, e *domain.WordEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Insert("words").
		Columns(
			"key", "lemma", "display", "part_of_speech",
			"definitions", "examples", "synonyms", "antonyms", "related_words",
			"pronunciation", "syllables", "etymology", "tags",
			"noun_forms", "verb_forms", "adjective_forms",
			"translations", "collocations", "usage_notes",
			"frequency_level", "difficulty_level",
			"created_by", "created_by_user_id", "ai_version", "created_at",
		).
		Values(
			e.Key, e.Lemma, e.Display, e.PartOfSpeech,
			e.Definitions, e.Examples, e.Synonyms, e.Antonyms, e.RelatedWords,
			e.Pronunciation, e.Syllables, e.Etymology, e.Tags,
			e.NounForms, e.VerbForms, e.AdjectiveForms,
			e.Translations, e.Collocations, e.UsageNotes,
			e.FrequencyLevel, e.DifficultyLevel,
			e.CreatedBy, e.CreatedByUserID, e.AIVersion, e.CreatedAt,
		).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "word", e.Key)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", e.Key)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrAlreadyExists, "word", e.Key)
	}
	return nil
}

// ApplyVoteDeltas atomically shifts the vote counters of a word and
// returns the resulting counts. Deltas may be negative; the table's
// non-negativity checks make a counter underflow a hard error.
func (r *Repo) ApplyVoteDeltas(ctx context.Context, key string, d domain.VoteCounts) (domain.VoteCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("words").
		Set("likes_count", sq.Expr("likes_count + ?", d.Likes)).
		Set("dislikes_count", sq.Expr("dislikes_count + ?", d.Dislikes)).
		Set("validations_count", sq.Expr("validations_count + ?", d.Validations)).
		Set("errors_count", sq.Expr("errors_count + ?", d.Errors)).
		Where(sq.Eq{"key": key}).
		Suffix("RETURNING likes_count, dislikes_count, validations_count, errors_count").
		ToSql()
	if err != nil {
		return domain.VoteCounts{}, postgres.MapError(err, "word", key)
	}

	var counts domain.VoteCounts
	err = q.QueryRow(ctx, query, args...).
		Scan(&counts.Likes, &counts.Dislikes, &counts.Validations, &counts.Errors)
	if err != nil {
		return domain.VoteCounts{}, postgres.MapError(err, "word", key)
	}
	return counts, nil
}

// SetVerification updates the verification flags of a word.
func (r *Repo) SetVerification(ctx context.Context, key string, verified, communityVerified bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("words").
		Set("verified", verified).
		Set("community_verified", communityVerified).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "word", key)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", key)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word", key)
	}
	return nil
}

// ReplaceContent overwrites the AI-generated content of an existing entry
// while preserving its creation metadata, verification state and vote
// counters. The regeneration counter is incremented.
func (r *Repo) ReplaceContent(ctx context.Context, e *domain.WordEntry, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("words").
		Set("lemma", e.Lemma).
		Set("part_of_speech", e.PartOfSpeech).
		Set("definitions", e.Definitions).
		Set("examples", e.Examples).
		Set("synonyms", e.Synonyms).
		Set("antonyms", e.Antonyms).
		Set("related_words", e.RelatedWords).
		Set("pronunciation", e.Pronunciation).
		Set("syllables", e.Syllables).
		Set("etymology", e.Etymology).
		Set("tags", e.Tags).
		Set("noun_forms", e.NounForms).
		Set("verb_forms", e.VerbForms).
		Set("adjective_forms", e.AdjectiveForms).
		Set("translations", e.Translations).
		Set("collocations", e.Collocations).
		Set("usage_notes", e.UsageNotes).
		Set("frequency_level", e.FrequencyLevel).
		Set("difficulty_level", e.DifficultyLevel).
		Set("ai_version", e.AIVersion).
		Set("regeneration_count", sq.Expr("regeneration_count + 1")).
		Set("last_regenerated_at", now).
		Where(sq.Eq{"key": e.Key}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "word", e.Key)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", e.Key)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word", e.Key)
	}
	return nil
}

// suggestQuery matches term as a substring of the key, lemma or display
// form, ranking prefix matches before inner matches and alphabetically
// within each group.
func suggestQuery(term string, limit int) sq.SelectBuilder {
	contains := "%" + term + "%"
	return psql.Select("key", "lemma", "display", "part_of_speech").
		From("words").
		Where(sq.Or{
			sq.Like{"key": contains},
			sq.Expr("lower(lemma) LIKE ?", contains),
			sq.Expr("lower(display) LIKE ?", contains),
		}).
		OrderByClause("(key LIKE ?) DESC", term+"%").
		OrderBy("key ASC").
		Limit(uint64(limit))
}

// Suggest returns up to limit autocomplete suggestions for term.
func (r *Repo) Suggest(ctx context.Context, term string, limit int) ([]domain.Suggestion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := suggestQuery(term, limit).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "word", term)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", term)
	}
	defer rows.Close()

	var out []domain.Suggestion
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(&s.Key, &s.Lemma, &s.Display, &s.PartOfSpeech); err != nil {
			return nil, postgres.MapError(err, "word", term)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "word", term)
	}
	return out, nil
}

// scanEntry reads one full words row.
func scanEntry(row interface{ Scan(...any) error }) (*domain.WordEntry, error) {
	var e domain.WordEntry
	err := row.Scan(
		&e.Key, &e.Lemma, &e.Display, &e.PartOfSpeech,
		&e.Definitions, &e.Examples, &e.Synonyms, &e.Antonyms, &e.RelatedWords,
		&e.Pronunciation, &e.Syllables, &e.Etymology, &e.Tags,
		&e.NounForms, &e.VerbForms, &e.AdjectiveForms,
		&e.Translations, &e.Collocations, &e.UsageNotes,
		&e.FrequencyLevel, &e.DifficultyLevel,
		&e.CreatedBy, &e.CreatedByUserID, &e.AIVersion, &e.CreatedAt,
		&e.Verified, &e.CommunityVerified,
		&e.Counts.Likes, &e.Counts.Dislikes, &e.Counts.Validations, &e.Counts.Errors,
		&e.RegenerationCount, &e.LastRegeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
