package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord creates a word row with a unique text. Returns a filled domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, lang domain.LanguageCode) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	phonetic := "ˈtest-" + suffix
	word := domain.Word{
		ID:              uuid.New(),
		Text:            "testord-" + suffix,
		LanguageCode:    lang,
		PhoneticGeneral: &phonetic,
		SourceType:      domain.SourceTypeImport,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, text, language_code, phonetic_general, etymology, source_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		word.ID, word.Text, string(word.LanguageCode), word.PhoneticGeneral, word.Etymology, string(word.SourceType), word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return word
}

// SeedWordWithDefinitions creates a word with 2 definitions, each having 2
// examples. Returns a fully populated domain.Word.
func SeedWordWithDefinitions(t *testing.T, pool *pgxpool.Pool, lang domain.LanguageCode) domain.Word {
	t.Helper()
	ctx := context.Background()

	word := SeedWord(t, pool, lang)
	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	posByIndex := []domain.PartOfSpeech{domain.PartOfSpeechNoun, domain.PartOfSpeechVerb}

	word.Definitions = make([]domain.Definition, 2)
	for i := 0; i < 2; i++ {
		def := domain.Definition{
			ID:           uuid.New(),
			WordID:       word.ID,
			Text:         "definition " + suffix + "-" + string(rune('A'+i)),
			LanguageCode: lang,
			PartOfSpeech: posByIndex[i],
			SourceType:   domain.SourceTypeImport,
			Position:     i,
			CreatedAt:    now,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO definitions (id, word_id, text, language_code, part_of_speech, source_type, position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			def.ID, def.WordID, def.Text, string(def.LanguageCode), string(def.PartOfSpeech), string(def.SourceType), def.Position, def.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWordWithDefinitions insert definition[%d]: %v", i, err)
		}

		def.Examples = make([]domain.DefinitionExample, 2)
		for j := 0; j < 2; j++ {
			ex := domain.DefinitionExample{
				ID:           uuid.New(),
				DefinitionID: def.ID,
				Text:         "example " + suffix + "-" + string(rune('A'+i)) + string(rune('1'+j)),
				LanguageCode: lang,
				Position:     j,
				CreatedAt:    now,
			}

			_, err := pool.Exec(ctx,
				`INSERT INTO definition_examples (id, definition_id, text, language_code, position, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				ex.ID, ex.DefinitionID, ex.Text, string(ex.LanguageCode), ex.Position, ex.CreatedAt,
			)
			if err != nil {
				t.Fatalf("testhelper: SeedWordWithDefinitions insert example[%d][%d]: %v", i, j, err)
			}
			def.Examples[j] = ex
		}

		word.Definitions[i] = def
	}

	return word
}

// CountRows returns the row count of a table. Table names come from test
// code only, never user input.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("testhelper: count rows in %s: %v", table, err)
	}
	return count
}
