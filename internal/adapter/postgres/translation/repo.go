// Package translation implements the Translation repository and the
// definition/example join tables using PostgreSQL.
//
// Translation rows are deduplicated by exact (content, language_code,
// source_type) match via lookup-then-create; there is no unique constraint
// on that triple. Join rows use upsert-on-conflict, so repeated imports of
// the same source data never duplicate.
package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ordbog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const translationColumns = "id, content, language_code, source_type, created_at"

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new translation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindOrCreate returns an existing translation with the exact
// (content, language_code, source_type) triple, creating one if absent.
func (r *Repo) FindOrCreate(ctx context.Context, content string, lang domain.LanguageCode, source domain.SourceType) (*domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(translationColumns).
		From("translations").
		Where(sq.Eq{"content": content, "language_code": lang, "source_type": source}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find translation: %w", err)
	}

	var tr domain.Translation
	err = pgxscan.Get(ctx, querier, &tr, sqlStr, args...)
	if err == nil {
		return &tr, nil
	}
	mapped := postgres.MapError(err, "translation", uuid.Nil)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	tr = domain.Translation{
		ID:           uuid.New(),
		Content:      content,
		LanguageCode: lang,
		SourceType:   source,
		CreatedAt:    time.Now().UTC(),
	}

	sqlStr, args, err = builder.Insert("translations").
		Columns("id", "content", "language_code", "source_type", "created_at").
		Values(tr.ID, tr.Content, tr.LanguageCode, tr.SourceType, tr.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert translation: %w", err)
	}

	if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "translation", tr.ID)
	}

	return &tr, nil
}

// AttachToDefinition upserts the (definition, translation) join row.
func (r *Repo) AttachToDefinition(ctx context.Context, definitionID, translationID uuid.UUID) error {
	return r.attach(ctx, "definition_translations", "definition_id", definitionID, translationID)
}

// AttachToExample upserts the (example, translation) join row.
func (r *Repo) AttachToExample(ctx context.Context, exampleID, translationID uuid.UUID) error {
	return r.attach(ctx, "example_translations", "example_id", exampleID, translationID)
}

func (r *Repo) attach(ctx context.Context, table, entityColumn string, entityID, translationID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Insert(table).
		Columns(entityColumn, "translation_id", "created_at").
		Values(entityID, translationID, time.Now().UTC()).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, translation_id) DO NOTHING", entityColumn)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", table, err)
	}

	if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
		return postgres.MapError(err, table, entityID)
	}

	return nil
}

// CountByDefinition returns the number of translations attached to a definition.
func (r *Repo) CountByDefinition(ctx context.Context, definitionID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select("COUNT(*)").
		From("definition_translations").
		Where(sq.Eq{"definition_id": definitionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count definition_translations: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count translations for definition %s: %w", definitionID, err)
	}

	return count, nil
}
