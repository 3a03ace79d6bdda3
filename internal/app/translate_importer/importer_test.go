package translate_importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/ordbog-backend/internal/config"
	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
	"github.com/heartmarshall/ordbog-backend/internal/service/translation"
)

// ===========================================================================
// Manual mocks (func fields)
// ===========================================================================

type mockService struct {
	mu sync.Mutex

	IngestWordFunc        func(ctx context.Context, input translation.WordInput) (*translation.IngestedWord, error)
	ImportTranslationFunc func(ctx context.Context, input translation.ImportInput) error

	ingested []translation.WordInput
	imported []translation.ImportInput
}

func (m *mockService) IngestWord(ctx context.Context, input translation.WordInput) (*translation.IngestedWord, error) {
	m.mu.Lock()
	m.ingested = append(m.ingested, input)
	m.mu.Unlock()
	if m.IngestWordFunc != nil {
		return m.IngestWordFunc(ctx, input)
	}
	ingested := &translation.IngestedWord{WordID: uuid.New()}
	for _, d := range input.Definitions {
		src := translation.SourceDefinition{ID: uuid.New(), Text: d.Text}
		for _, ex := range d.Examples {
			src.Examples = append(src.Examples, translation.SourceExample{ID: uuid.New(), Text: ex})
		}
		ingested.Definitions = append(ingested.Definitions, src)
	}
	return ingested, nil
}

func (m *mockService) ImportTranslation(ctx context.Context, input translation.ImportInput) error {
	m.mu.Lock()
	m.imported = append(m.imported, input)
	m.mu.Unlock()
	if m.ImportTranslationFunc != nil {
		return m.ImportTranslationFunc(ctx, input)
	}
	return nil
}

func (m *mockService) importedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.imported)
}

type mockWordLoader struct {
	GetByTextAndLanguageFunc func(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error)
}

func (m *mockWordLoader) GetByTextAndLanguage(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error) {
	if m.GetByTextAndLanguageFunc != nil {
		return m.GetByTextAndLanguageFunc(ctx, text, lang)
	}
	return nil, domain.ErrNotFound
}

type mockDefinitionLister struct {
	ListByWordIDFunc func(ctx context.Context, wordID uuid.UUID) ([]domain.Definition, error)
}

func (m *mockDefinitionLister) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Definition, error) {
	if m.ListByWordIDFunc != nil {
		return m.ListByWordIDFunc(ctx, wordID)
	}
	return nil, nil
}

type mockFetcher struct {
	FetchTranslationFunc func(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error)
}

func (m *mockFetcher) FetchTranslation(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error) {
	if m.FetchTranslationFunc != nil {
		return m.FetchTranslationFunc(ctx, req)
	}
	return nil, nil
}

// ===========================================================================
// Helpers
// ===========================================================================

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testImportConfig(dir string) config.ImportConfig {
	return config.ImportConfig{PayloadDir: dir, Concurrency: 2}
}

func writePayload(t *testing.T, dir, name string, file PayloadFile) {
	t.Helper()
	data, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
}

// ===========================================================================
// RunDir
// ===========================================================================

func TestRunDir_ImportsValidFiles(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "hund.json", validFile())

	second := validFile()
	second.SourceWord.Text = "kat"
	second.Translation.EnglishWordData.Word = "cat"
	writePayload(t, dir, "kat.json", second)

	svc := &mockService{}
	im := New(testImportConfig(dir), domain.LanguageEnglish, svc, nil, nil, nil, discardLogger())

	result, err := im.RunDir(context.Background())
	if err != nil {
		t.Fatalf("RunDir() unexpected error: %v", err)
	}

	if result.FilesProcessed != 2 || result.Imported != 2 || result.Errors != 0 {
		t.Errorf("result = %+v, want 2 processed, 2 imported", result)
	}
	if svc.importedCount() != 2 {
		t.Errorf("service imported %d, want 2", svc.importedCount())
	}
}

func TestRunDir_IsolatesBadFiles(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "good.json", validFile())
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	invalid := validFile()
	invalid.SourceWord.LanguageCode = "xx"
	writePayload(t, dir, "invalid.json", invalid)

	svc := &mockService{}
	im := New(testImportConfig(dir), domain.LanguageEnglish, svc, nil, nil, nil, discardLogger())

	result, err := im.RunDir(context.Background())
	if err != nil {
		t.Fatalf("RunDir() unexpected error: %v", err)
	}

	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Errors != 2 {
		t.Errorf("errors = %d, want 2 (broken json + invalid payload)", result.Errors)
	}
}

func TestRunDir_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "hund.json", validFile())

	svc := &mockService{}
	cfg := testImportConfig(dir)
	cfg.DryRun = true
	im := New(cfg, domain.LanguageEnglish, svc, nil, nil, nil, discardLogger())

	result, err := im.RunDir(context.Background())
	if err != nil {
		t.Fatalf("RunDir() unexpected error: %v", err)
	}

	if result.Skipped != 1 || result.Imported != 0 {
		t.Errorf("result = %+v, want 1 skipped", result)
	}
	if len(svc.ingested) != 0 || svc.importedCount() != 0 {
		t.Error("dry run must not touch the service")
	}
}

func TestRunDir_EmptyDir(t *testing.T) {
	svc := &mockService{}
	im := New(testImportConfig(t.TempDir()), domain.LanguageEnglish, svc, nil, nil, nil, discardLogger())

	result, err := im.RunDir(context.Background())
	if err != nil {
		t.Fatalf("RunDir() unexpected error: %v", err)
	}
	if result.FilesProcessed != 0 {
		t.Errorf("processed = %d, want 0", result.FilesProcessed)
	}
}

func TestRunDir_ImportFailureCountsAsError(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "hund.json", validFile())

	svc := &mockService{
		ImportTranslationFunc: func(ctx context.Context, input translation.ImportInput) error {
			return errors.New("database gone")
		},
	}
	im := New(testImportConfig(dir), domain.LanguageEnglish, svc, nil, nil, nil, discardLogger())

	result, err := im.RunDir(context.Background())
	if err != nil {
		t.Fatalf("RunDir() unexpected error: %v", err)
	}
	if result.Errors != 1 || result.Imported != 0 {
		t.Errorf("result = %+v, want 1 error", result)
	}
}

// ===========================================================================
// RunWords
// ===========================================================================

func TestRunWords_FetchesAndImports(t *testing.T) {
	wordID := uuid.New()
	defID := uuid.New()

	words := &mockWordLoader{
		GetByTextAndLanguageFunc: func(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error) {
			return &domain.Word{ID: wordID, Text: text, LanguageCode: lang}, nil
		},
	}
	definitions := &mockDefinitionLister{
		ListByWordIDFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Definition, error) {
			return []domain.Definition{{ID: defID, WordID: id, Text: "et pattedyr"}}, nil
		},
	}
	fetcher := &mockFetcher{
		FetchTranslationFunc: func(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error) {
			if req.WordText != "hund" || len(req.Definitions) != 1 {
				t.Errorf("unexpected request: %+v", req)
			}
			return &provider.TranslatedWordPayload{
				EnglishWordData: provider.EnglishWordData{
					Word:        "dog",
					Definitions: []provider.TranslatedDefinition{{Translation: "a domesticated mammal"}},
				},
			}, nil
		},
	}

	svc := &mockService{}
	im := New(testImportConfig(""), domain.LanguageEnglish, svc, words, definitions, fetcher, discardLogger())

	result, err := im.RunWords(context.Background(), []string{"hund"}, domain.LanguageDanish)
	if err != nil {
		t.Fatalf("RunWords() unexpected error: %v", err)
	}

	if result.Imported != 1 {
		t.Fatalf("imported = %d, want 1", result.Imported)
	}
	input := svc.imported[0]
	if input.SourceWordID != wordID || len(input.Definitions) != 1 || input.Definitions[0].ID != defID {
		t.Errorf("import input not built from persisted rows: %+v", input)
	}
}

func TestRunWords_SkipsUnknownAndUntranslated(t *testing.T) {
	words := &mockWordLoader{
		GetByTextAndLanguageFunc: func(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error) {
			if text == "findesikke" {
				return nil, domain.ErrNotFound
			}
			return &domain.Word{ID: uuid.New(), Text: text, LanguageCode: lang}, nil
		},
	}
	// Fetcher returns nil: no translation available for any word.
	svc := &mockService{}
	im := New(testImportConfig(""), domain.LanguageEnglish, svc, words, &mockDefinitionLister{}, &mockFetcher{}, discardLogger())

	result, err := im.RunWords(context.Background(), []string{"findesikke", "hund"}, domain.LanguageDanish)
	if err != nil {
		t.Fatalf("RunWords() unexpected error: %v", err)
	}

	if result.Skipped != 2 || result.Imported != 0 || result.Errors != 0 {
		t.Errorf("result = %+v, want 2 skipped", result)
	}
}

func TestRunWords_RequiresDependencies(t *testing.T) {
	im := New(testImportConfig(""), domain.LanguageEnglish, &mockService{}, nil, nil, nil, discardLogger())
	if _, err := im.RunWords(context.Background(), []string{"hund"}, domain.LanguageDanish); err == nil {
		t.Error("RunWords() expected error without fetcher dependencies")
	}
}
