// Package wordrelation implements the word-to-word relationship repository.
package wordrelation

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

// Repo provides word-relation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word-relation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetOrCreate finds the edge (from, to, type) and creates it if absent.
// Edges carry no mutable payload, so there is no update path. Repeated calls
// with the same triple are idempotent: the unique constraint plus
// ON CONFLICT DO NOTHING absorb races between concurrent imports.
func (r *Repo) GetOrCreate(ctx context.Context, from, to uuid.UUID, relType domain.RelationType) (*domain.WordRelation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	existing, err := r.get(ctx, querier, from, to, relType)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	rel := domain.WordRelation{
		ID:         uuid.New(),
		FromWordID: from,
		ToWordID:   to,
		Type:       relType,
		CreatedAt:  time.Now().UTC(),
	}

	sqlStr, args, err := builder.Insert("word_relations").
		Columns("id", "from_word_id", "to_word_id", "type", "created_at").
		Values(rel.ID, rel.FromWordID, rel.ToWordID, rel.Type, rel.CreatedAt).
		Suffix("ON CONFLICT (from_word_id, to_word_id, type) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word_relation: %w", err)
	}

	if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "word_relation", rel.ID)
	}

	// Re-read: a concurrent insert may have won the ON CONFLICT race.
	return r.get(ctx, querier, from, to, relType)
}

func (r *Repo) get(ctx context.Context, querier postgres.Querier, from, to uuid.UUID, relType domain.RelationType) (*domain.WordRelation, error) {
	sqlStr, args, err := builder.Select("id, from_word_id, to_word_id, type, created_at").
		From("word_relations").
		Where(sq.Eq{"from_word_id": from, "to_word_id": to, "type": relType}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word_relation: %w", err)
	}

	var rel domain.WordRelation
	if err := pgxscan.Get(ctx, querier, &rel, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "word_relation", uuid.Nil)
	}

	return &rel, nil
}
