// Package word implements the Word repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ordbog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = "id, text, language_code, phonetic_general, etymology, source_type, created_at, updated_at"

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert inserts the word, or on (text, language_code) conflict updates
// phonetic_general only; etymology and source_type of an existing row are
// never touched by re-import. Returns the definitive word id.
func (r *Repo) Upsert(ctx context.Context, w domain.Word) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()

	sqlStr, args, err := builder.Insert("words").
		Columns("id", "text", "language_code", "phonetic_general", "etymology", "source_type", "created_at", "updated_at").
		Values(w.ID, w.Text, w.LanguageCode, w.PhoneticGeneral, w.Etymology, w.SourceType, now, now).
		Suffix(`ON CONFLICT (text, language_code)
			DO UPDATE SET phonetic_general = EXCLUDED.phonetic_general, updated_at = EXCLUDED.updated_at
			RETURNING id`).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build upsert word: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "word", w.ID)
	}

	return id, nil
}

// GetByTextAndLanguage returns a word by its exact text and language code.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByTextAndLanguage(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(wordColumns).
		From("words").
		Where(sq.Eq{"text": text, "language_code": lang}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word by text: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}

	return &w, nil
}

// GetByID returns a word by id. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(wordColumns).
		From("words").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word by id: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, querier, &w, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return &w, nil
}
