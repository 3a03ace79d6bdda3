// Package translation implements the translation-ingestion pipeline: it
// persists a machine-translated word, links it to its source word, attaches
// definition and example translations, and processes any bundled Danish
// dictionary variants. All writes for one source word run inside a single
// transaction.
package translation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Upsert(ctx context.Context, w domain.Word) (uuid.UUID, error)
	GetByTextAndLanguage(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error)
}

type relationRepo interface {
	GetOrCreate(ctx context.Context, from, to uuid.UUID, relType domain.RelationType) (*domain.WordRelation, error)
}

type definitionRepo interface {
	Create(ctx context.Context, d domain.Definition) (*domain.Definition, error)
	CreateExample(ctx context.Context, e domain.DefinitionExample) (*domain.DefinitionExample, error)
	GetByWordAndText(ctx context.Context, wordID uuid.UUID, text string) (*domain.Definition, error)
	ListExamples(ctx context.Context, definitionID uuid.UUID) ([]domain.DefinitionExample, error)
}

type translationRepo interface {
	FindOrCreate(ctx context.Context, content string, lang domain.LanguageCode, source domain.SourceType) (*domain.Translation, error)
	AttachToDefinition(ctx context.Context, definitionID, translationID uuid.UUID) error
	AttachToExample(ctx context.Context, exampleID, translationID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the translation import business logic.
type Service struct {
	log          *slog.Logger
	words        wordRepo
	relations    relationRepo
	definitions  definitionRepo
	translations translationRepo
	tx           txManager
}

// NewService creates a new translation import service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	relations relationRepo,
	definitions definitionRepo,
	translations translationRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "translation"),
		words:        words,
		relations:    relations,
		definitions:  definitions,
		translations: translations,
		tx:           tx,
	}
}
