package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

// WordInput describes a dictionary word to persist: the headword plus its
// definitions and example sentences.
type WordInput struct {
	Text       string
	Language   domain.LanguageCode
	Phonetic   string
	SourceType domain.SourceType

	Definitions []WordDefinitionInput
}

// WordDefinitionInput is one definition of a word being ingested.
type WordDefinitionInput struct {
	Text         string
	PartOfSpeech domain.PartOfSpeech
	Examples     []string
}

// IngestedWord reports the persisted rows of an ingested word, in input
// order, so callers can attach translations to them.
type IngestedWord struct {
	WordID      uuid.UUID
	Definitions []SourceDefinition
}

// IngestWord persists a word with its definitions and examples inside one
// transaction, find-or-create at every level: re-ingesting the same word
// changes nothing but the phonetic field.
func (s *Service) IngestWord(ctx context.Context, input WordInput) (*IngestedWord, error) {
	if input.Text == "" {
		return nil, domain.NewValidationError("text", "is required")
	}
	if !input.Language.IsValid() {
		return nil, domain.NewValidationError("language", "unknown language code")
	}

	var ingested *IngestedWord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		ingested, err = s.ingestWordInTx(txCtx, input)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ingest word %q: %w", input.Text, err)
	}

	return ingested, nil
}

// ingestWordInTx is the dictionary-ingestion routine shared by primary
// words and by the variant sub-processor. Word text is normalized before
// storage so later text lookups match. Must run inside a transaction.
func (s *Service) ingestWordInTx(ctx context.Context, input WordInput) (*IngestedWord, error) {
	wordID, err := s.words.Upsert(ctx, domain.Word{
		ID:              uuid.New(),
		Text:            domain.NormalizeText(input.Text),
		LanguageCode:    input.Language,
		PhoneticGeneral: optional(input.Phonetic),
		SourceType:      input.SourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert word: %w", err)
	}

	ingested := &IngestedWord{WordID: wordID}

	for i, di := range input.Definitions {
		def, created, err := s.getOrCreateDefinition(ctx, wordID, di.Text, input.Language, di.PartOfSpeech, i)
		if err != nil {
			return nil, fmt.Errorf("persist definition: %w", err)
		}

		// Examples are created together with their definition. An existing
		// definition already has its examples, so re-ingest reads them back
		// instead of duplicating.
		var examples []domain.DefinitionExample
		if created {
			for j, text := range di.Examples {
				ex, err := s.definitions.CreateExample(ctx, domain.DefinitionExample{
					DefinitionID: def.ID,
					Text:         text,
					LanguageCode: input.Language,
					Position:     j,
				})
				if err != nil {
					return nil, fmt.Errorf("create example: %w", err)
				}
				examples = append(examples, *ex)
			}
		} else {
			examples, err = s.definitions.ListExamples(ctx, def.ID)
			if err != nil {
				return nil, fmt.Errorf("list examples: %w", err)
			}
		}

		src := SourceDefinition{ID: def.ID, Text: def.Text}
		for _, ex := range examples {
			src.Examples = append(src.Examples, SourceExample{ID: ex.ID, Text: ex.Text})
		}
		ingested.Definitions = append(ingested.Definitions, src)
	}

	return ingested, nil
}
