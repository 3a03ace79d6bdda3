// Package definition implements the Definition and DefinitionExample
// repository using PostgreSQL.
package definition

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

const (
	definitionColumns = "id, word_id, text, language_code, part_of_speech, source_type, position, created_at"
	exampleColumns    = "id, definition_id, text, language_code, position, created_at"
)

// Repo provides definition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new definition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a definition. The caller assigns position.
func (r *Repo) Create(ctx context.Context, d domain.Definition) (*domain.Definition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now().UTC()

	sqlStr, args, err := builder.Insert("definitions").
		Columns("id", "word_id", "text", "language_code", "part_of_speech", "source_type", "position", "created_at").
		Values(d.ID, d.WordID, d.Text, d.LanguageCode, d.PartOfSpeech, d.SourceType, d.Position, d.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert definition: %w", err)
	}

	if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "definition", d.ID)
	}

	return &d, nil
}

// CreateExample inserts a usage example for a definition.
func (r *Repo) CreateExample(ctx context.Context, e domain.DefinitionExample) (*domain.DefinitionExample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now().UTC()

	sqlStr, args, err := builder.Insert("definition_examples").
		Columns("id", "definition_id", "text", "language_code", "position", "created_at").
		Values(e.ID, e.DefinitionID, e.Text, e.LanguageCode, e.Position, e.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert definition_example: %w", err)
	}

	if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "definition_example", e.ID)
	}

	return &e, nil
}

// GetByWordAndText returns the first definition of the given word whose text
// matches exactly. Used by the fixed-expression attach step, which locates
// rows persisted earlier in the same transaction by text rather than by id.
// Returns domain.ErrNotFound on a text mismatch.
func (r *Repo) GetByWordAndText(ctx context.Context, wordID uuid.UUID, text string) (*domain.Definition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(definitionColumns).
		From("definitions").
		Where(sq.Eq{"word_id": wordID, "text": text}).
		OrderBy("position").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get definition by text: %w", err)
	}

	var d domain.Definition
	if err := pgxscan.Get(ctx, querier, &d, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "definition", wordID)
	}

	return &d, nil
}

// ListExamples returns a definition's examples ordered by position.
func (r *Repo) ListExamples(ctx context.Context, definitionID uuid.UUID) ([]domain.DefinitionExample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(exampleColumns).
		From("definition_examples").
		Where(sq.Eq{"definition_id": definitionID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list examples: %w", err)
	}

	var examples []domain.DefinitionExample
	if err := pgxscan.Select(ctx, querier, &examples, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list examples for definition %s: %w", definitionID, err)
	}

	return examples, nil
}

// ListByWordID returns a word's definitions ordered by position, each with
// its examples populated.
func (r *Repo) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Definition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sqlStr, args, err := builder.Select(definitionColumns).
		From("definitions").
		Where(sq.Eq{"word_id": wordID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list definitions: %w", err)
	}

	var defs []domain.Definition
	if err := pgxscan.Select(ctx, querier, &defs, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list definitions for word %s: %w", wordID, err)
	}
	if len(defs) == 0 {
		return []domain.Definition{}, nil
	}

	defIDs := make([]uuid.UUID, len(defs))
	for i, d := range defs {
		defIDs[i] = d.ID
	}

	sqlStr, args, err = builder.Select(exampleColumns).
		From("definition_examples").
		Where(sq.Eq{"definition_id": defIDs}).
		OrderBy("definition_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list examples: %w", err)
	}

	var examples []domain.DefinitionExample
	if err := pgxscan.Select(ctx, querier, &examples, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list examples for word %s: %w", wordID, err)
	}

	byDef := make(map[uuid.UUID][]domain.DefinitionExample)
	for _, ex := range examples {
		byDef[ex.DefinitionID] = append(byDef[ex.DefinitionID], ex)
	}

	for i := range defs {
		if exs, ok := byDef[defs[i].ID]; ok {
			defs[i].Examples = exs
		} else {
			defs[i].Examples = []domain.DefinitionExample{}
		}
	}

	return defs, nil
}
