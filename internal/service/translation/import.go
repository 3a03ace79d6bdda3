package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

// pgSerializationFailure is the transaction-conflict SQLSTATE tolerated by
// the import: concurrent imports of the same word may collide, and the
// colliding one is treated as already done.
const pgSerializationFailure = "40001"

// ImportTranslation persists the translated counterpart of one source word:
// the translated Word itself, the relation edge back to the source, one
// Translation row per translated definition and example (deduplicated by
// exact content), and any bundled dictionary variants. Everything runs in a
// single transaction; re-running the same import changes no row counts.
//
// A transaction conflict (SQLSTATE 40001) is swallowed: it is logged at WARN
// and the import reports success even though the transaction rolled back.
func (s *Service) ImportTranslation(ctx context.Context, input ImportInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.importInTx(txCtx, input)
	})
	if err != nil {
		if isTxConflict(err) {
			s.log.WarnContext(ctx, "transaction conflict tolerated, import reported as completed",
				slog.String("word", input.SourceWordText),
				slog.String("error", err.Error()),
			)
			return nil
		}
		return fmt.Errorf("import translation for %q: %w", input.SourceWordText, err)
	}

	s.log.InfoContext(ctx, "translation imported",
		slog.String("word", input.SourceWordText),
		slog.String("translated", input.Payload.EnglishWordData.Word),
		slog.Int("definitions", len(input.Definitions)),
	)

	return nil
}

func (s *Service) importInTx(ctx context.Context, input ImportInput) error {
	eng := input.Payload.EnglishWordData

	translatedID, err := s.words.Upsert(ctx, domain.Word{
		ID:              uuid.New(),
		Text:            domain.NormalizeText(eng.Word),
		LanguageCode:    input.TargetLanguage,
		PhoneticGeneral: optional(eng.Phonetic),
		SourceType:      domain.SourceTypeAITranslate,
	})
	if err != nil {
		return fmt.Errorf("upsert translated word: %w", err)
	}

	if _, err := s.relations.GetOrCreate(ctx, input.SourceWordID, translatedID, domain.RelationTranslation); err != nil {
		return fmt.Errorf("upsert relation edge: %w", err)
	}

	if err := s.attachDefinitionTranslations(ctx, input); err != nil {
		return err
	}

	if input.Payload.DanishDictionary != nil {
		if err := s.processVariants(ctx, input, input.Payload.DanishDictionary.Variants); err != nil {
			return err
		}
	}

	return nil
}

// attachDefinitionTranslations pairs source definitions with translated
// definitions by index and attaches a deduplicated Translation row to each
// pair, then does the same for their examples.
func (s *Service) attachDefinitionTranslations(ctx context.Context, input ImportInput) error {
	translated := input.Payload.EnglishWordData.Definitions

	pairs := min(len(input.Definitions), len(translated))
	if len(input.Definitions) != len(translated) {
		s.log.WarnContext(ctx, "definition count mismatch, pairing truncated",
			slog.String("word", input.SourceWordText),
			slog.Int("source", len(input.Definitions)),
			slog.Int("translated", len(translated)),
		)
	}

	for i := 0; i < pairs; i++ {
		def := input.Definitions[i]
		tr := translated[i]

		if tr.Translation != "" {
			row, err := s.translations.FindOrCreate(ctx, tr.Translation, input.TargetLanguage, domain.SourceTypeAITranslate)
			if err != nil {
				return fmt.Errorf("find or create definition translation: %w", err)
			}
			if err := s.translations.AttachToDefinition(ctx, def.ID, row.ID); err != nil {
				return fmt.Errorf("attach translation to definition: %w", err)
			}
		}

		if err := s.attachExampleTranslations(ctx, input.SourceWordText, input.TargetLanguage, def.Examples, tr.ExampleTranslations); err != nil {
			return err
		}
	}

	return nil
}

// attachExampleTranslations pairs examples with their translated strings by
// index. When counts differ, min(N, M) pairs are attached and the truncated
// remainder is logged, one warning per unmatched index.
func (s *Service) attachExampleTranslations(
	ctx context.Context,
	wordText string,
	lang domain.LanguageCode,
	examples []SourceExample,
	translated []string,
) error {
	pairs := min(len(examples), len(translated))

	for i := 0; i < pairs; i++ {
		if translated[i] == "" {
			continue
		}
		row, err := s.translations.FindOrCreate(ctx, translated[i], lang, domain.SourceTypeAITranslate)
		if err != nil {
			return fmt.Errorf("find or create example translation: %w", err)
		}
		if err := s.translations.AttachToExample(ctx, examples[i].ID, row.ID); err != nil {
			return fmt.Errorf("attach translation to example: %w", err)
		}
	}

	for i := pairs; i < max(len(examples), len(translated)); i++ {
		s.log.WarnContext(ctx, "example translation unpaired, skipped",
			slog.String("word", wordText),
			slog.Int("index", i),
			slog.Int("examples", len(examples)),
			slog.Int("translations", len(translated)),
		)
	}

	return nil
}

// isTxConflict reports whether err is the tolerated transaction-conflict
// error, either mapped by a repository or raw from commit.
func isTxConflict(err error) bool {
	if errors.Is(err, domain.ErrTxConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
