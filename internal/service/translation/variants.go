package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
)

// processVariants persists each dictionary variant bundled with the payload
// as its own word with definitions and examples, links it to the source
// word, and attaches the variant's own translations. Straight-line
// traversal: variant, definitions, examples, fixed expressions. The payload
// is a tree, so no cycle handling is needed.
func (s *Service) processVariants(ctx context.Context, input ImportInput, variants []provider.Variant) error {
	for _, v := range variants {
		if err := s.processVariant(ctx, input, v); err != nil {
			return fmt.Errorf("process variant %q: %w", v.Word, err)
		}
	}
	return nil
}

func (s *Service) processVariant(ctx context.Context, input ImportInput, v provider.Variant) error {
	pos := variantPartOfSpeech(v.PartOfSpeech)

	word := WordInput{
		Text:       v.Word,
		Language:   input.SourceLanguage,
		Phonetic:   v.Phonetic,
		SourceType: domain.SourceTypeImport,
	}
	for _, vd := range v.Definitions {
		di := WordDefinitionInput{Text: vd.Text, PartOfSpeech: pos}
		for _, ve := range vd.Examples {
			di.Examples = append(di.Examples, ve.Text)
		}
		word.Definitions = append(word.Definitions, di)
	}

	// Same ingestion routine as primary words; already inside the import's
	// transaction.
	ingested, err := s.ingestWordInTx(ctx, word)
	if err != nil {
		return fmt.Errorf("persist variant word: %w", err)
	}

	if _, err := s.relations.GetOrCreate(ctx, input.SourceWordID, ingested.WordID, domain.RelationVariant); err != nil {
		return fmt.Errorf("upsert variant relation: %w", err)
	}

	for i, vd := range v.Definitions {
		def := ingested.Definitions[i]

		if vd.Translation != "" {
			row, err := s.translations.FindOrCreate(ctx, vd.Translation, input.TargetLanguage, domain.SourceTypeAITranslate)
			if err != nil {
				return fmt.Errorf("find or create variant definition translation: %w", err)
			}
			if err := s.translations.AttachToDefinition(ctx, def.ID, row.ID); err != nil {
				return fmt.Errorf("attach variant definition translation: %w", err)
			}
		}

		translated := make([]string, len(vd.Examples))
		for j, ve := range vd.Examples {
			translated[j] = ve.Translation
		}
		if err := s.attachExampleTranslations(ctx, v.Word, input.TargetLanguage, def.Examples, translated); err != nil {
			return err
		}
	}

	for _, fe := range v.FixedExpressions {
		if err := s.persistFixedExpression(ctx, input, ingested.WordID, fe); err != nil {
			return fmt.Errorf("fixed expression %q: %w", fe.Text, err)
		}
	}

	return nil
}

// persistFixedExpression stores an idiomatic expression as its own word and
// definition, linked to the variant, then attaches its translation.
func (s *Service) persistFixedExpression(ctx context.Context, input ImportInput, variantID uuid.UUID, fe provider.FixedExpression) error {
	word := WordInput{
		Text:       fe.Text,
		Language:   input.SourceLanguage,
		SourceType: domain.SourceTypeImport,
	}
	if fe.Definition != "" {
		word.Definitions = []WordDefinitionInput{
			{Text: fe.Definition, PartOfSpeech: domain.PartOfSpeechFixedExpression},
		}
	}

	ingested, err := s.ingestWordInTx(ctx, word)
	if err != nil {
		return fmt.Errorf("persist expression word: %w", err)
	}

	if _, err := s.relations.GetOrCreate(ctx, variantID, ingested.WordID, domain.RelationComposition); err != nil {
		return fmt.Errorf("upsert expression relation: %w", err)
	}

	return s.attachFixedExpressionTranslation(ctx, input, fe)
}

// attachFixedExpressionTranslation re-locates the expression's word and
// definition by exact text. The rows were written earlier in the same
// transaction but their ids are not carried here, so the lookup goes by
// text; a miss is logged and the expression's translation skipped, never
// fatal.
func (s *Service) attachFixedExpressionTranslation(ctx context.Context, input ImportInput, fe provider.FixedExpression) error {
	if fe.Translation == "" {
		return nil
	}

	word, err := s.words.GetByTextAndLanguage(ctx, domain.NormalizeText(fe.Text), input.SourceLanguage)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "fixed expression word not found, translation skipped",
			slog.String("expression", fe.Text),
			slog.String("word", input.SourceWordText),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup expression word: %w", err)
	}

	def, err := s.definitions.GetByWordAndText(ctx, word.ID, fe.Definition)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "fixed expression definition not found, translation skipped",
			slog.String("expression", fe.Text),
			slog.String("word", input.SourceWordText),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup expression definition: %w", err)
	}

	row, err := s.translations.FindOrCreate(ctx, fe.Translation, input.TargetLanguage, domain.SourceTypeAITranslate)
	if err != nil {
		return fmt.Errorf("find or create expression translation: %w", err)
	}
	if err := s.translations.AttachToDefinition(ctx, def.ID, row.ID); err != nil {
		return fmt.Errorf("attach expression translation: %w", err)
	}

	return nil
}

// getOrCreateDefinition finds a definition by exact text under a word,
// creating it if absent. The bool reports whether it was created.
func (s *Service) getOrCreateDefinition(
	ctx context.Context,
	wordID uuid.UUID,
	text string,
	lang domain.LanguageCode,
	pos domain.PartOfSpeech,
	position int,
) (*domain.Definition, bool, error) {
	existing, err := s.definitions.GetByWordAndText(ctx, wordID, text)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	created, err := s.definitions.Create(ctx, domain.Definition{
		WordID:       wordID,
		Text:         text,
		LanguageCode: lang,
		PartOfSpeech: pos,
		SourceType:   domain.SourceTypeImport,
		Position:     position,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func variantPartOfSpeech(raw string) domain.PartOfSpeech {
	pos := domain.PartOfSpeech(raw)
	if !pos.IsValid() {
		return domain.PartOfSpeechOther
	}
	return pos
}
