// Package translate_importer runs batch imports of translated dictionary
// content: either from a directory of payload JSON files, or by fetching
// translations from the translation service for already-persisted words.
// Failures are isolated per word; one bad file never stops the batch.
package translate_importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ordbog-backend/internal/config"
	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
	"github.com/heartmarshall/ordbog-backend/internal/service/translation"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type importService interface {
	IngestWord(ctx context.Context, input translation.WordInput) (*translation.IngestedWord, error)
	ImportTranslation(ctx context.Context, input translation.ImportInput) error
}

type wordLoader interface {
	GetByTextAndLanguage(ctx context.Context, text string, lang domain.LanguageCode) (*domain.Word, error)
}

type definitionLister interface {
	ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.Definition, error)
}

type translationFetcher interface {
	FetchTranslation(ctx context.Context, req provider.TranslationRequest) (*provider.TranslatedWordPayload, error)
}

// ---------------------------------------------------------------------------
// Importer
// ---------------------------------------------------------------------------

// Result holds import statistics.
type Result struct {
	FilesProcessed int
	Imported       int
	Skipped        int
	Errors         int
}

// Importer coordinates batch translation imports.
type Importer struct {
	cfg         config.ImportConfig
	target      domain.LanguageCode
	svc         importService
	words       wordLoader
	definitions definitionLister
	fetcher     translationFetcher
	log         *slog.Logger
}

// New creates a new batch importer. words, definitions and fetcher are only
// needed for RunWords and may be nil when only RunDir is used.
func New(
	cfg config.ImportConfig,
	target domain.LanguageCode,
	svc importService,
	words wordLoader,
	definitions definitionLister,
	fetcher translationFetcher,
	logger *slog.Logger,
) *Importer {
	return &Importer{
		cfg:         cfg,
		target:      target,
		svc:         svc,
		words:       words,
		definitions: definitions,
		fetcher:     fetcher,
		log:         logger.With("component", "translate_importer"),
	}
}

// RunDir scans the payload directory for *.json files, validates each, and
// imports them with bounded concurrency. Distinct words only: two files for
// the same word in one batch are not coordinated beyond the database's
// unique constraints.
func (im *Importer) RunDir(ctx context.Context) (Result, error) {
	files, err := filepath.Glob(filepath.Join(im.cfg.PayloadDir, "*.json"))
	if err != nil {
		return Result{}, fmt.Errorf("glob payload dir: %w", err)
	}
	if len(files) == 0 {
		im.log.InfoContext(ctx, "no payload files found", slog.String("dir", im.cfg.PayloadDir))
		return Result{}, nil
	}

	var (
		mu     sync.Mutex
		result Result
	)
	result.FilesProcessed = len(files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency())

	for _, path := range files {
		g.Go(func() error {
			outcome := im.importFile(gctx, path)
			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeImported:
				result.Imported++
			case outcomeSkipped:
				result.Skipped++
			case outcomeError:
				result.Errors++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	im.logSummary(ctx, result)
	return result, nil
}

// RunWords fetches translations from the translation service for words that
// are already persisted, then imports them.
func (im *Importer) RunWords(ctx context.Context, texts []string, lang domain.LanguageCode) (Result, error) {
	if im.fetcher == nil || im.words == nil || im.definitions == nil {
		return Result{}, errors.New("importer: RunWords requires word, definition and fetcher dependencies")
	}

	var (
		mu     sync.Mutex
		result Result
	)
	result.FilesProcessed = len(texts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency())

	for _, text := range texts {
		g.Go(func() error {
			outcome := im.importWord(gctx, text, lang)
			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeImported:
				result.Imported++
			case outcomeSkipped:
				result.Skipped++
			case outcomeError:
				result.Errors++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	im.logSummary(ctx, result)
	return result, nil
}

type outcome int

const (
	outcomeImported outcome = iota
	outcomeSkipped
	outcomeError
)

func (im *Importer) importFile(ctx context.Context, path string) outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		im.log.ErrorContext(ctx, "read file", slog.String("path", path), slog.String("error", err.Error()))
		return outcomeError
	}

	var file PayloadFile
	if err := json.Unmarshal(data, &file); err != nil {
		im.log.ErrorContext(ctx, "unmarshal JSON", slog.String("path", path), slog.String("error", err.Error()))
		return outcomeError
	}

	if err := Validate(file); err != nil {
		im.log.ErrorContext(ctx, "invalid payload", slog.String("path", path), slog.String("error", err.Error()))
		return outcomeError
	}

	if im.cfg.DryRun {
		im.log.InfoContext(ctx, "dry run, skipping import", slog.String("word", file.SourceWord.Text))
		return outcomeSkipped
	}

	ingested, err := im.svc.IngestWord(ctx, MapSourceWord(file))
	if err != nil {
		im.log.ErrorContext(ctx, "ingest source word",
			slog.String("word", file.SourceWord.Text), slog.String("error", err.Error()))
		return outcomeError
	}

	importCtx, cancel := im.withTxTimeout(ctx)
	defer cancel()

	if err := im.svc.ImportTranslation(importCtx, MapImport(file, ingested, im.target)); err != nil {
		im.log.ErrorContext(ctx, "import translation",
			slog.String("word", file.SourceWord.Text), slog.String("error", err.Error()))
		return outcomeError
	}

	return outcomeImported
}

func (im *Importer) importWord(ctx context.Context, text string, lang domain.LanguageCode) outcome {
	word, err := im.words.GetByTextAndLanguage(ctx, text, lang)
	if errors.Is(err, domain.ErrNotFound) {
		im.log.WarnContext(ctx, "word not persisted, skipped", slog.String("word", text))
		return outcomeSkipped
	}
	if err != nil {
		im.log.ErrorContext(ctx, "load word", slog.String("word", text), slog.String("error", err.Error()))
		return outcomeError
	}

	defs, err := im.definitions.ListByWordID(ctx, word.ID)
	if err != nil {
		im.log.ErrorContext(ctx, "load definitions", slog.String("word", text), slog.String("error", err.Error()))
		return outcomeError
	}

	payload, err := im.fetcher.FetchTranslation(ctx, buildRequest(word, defs, im.target))
	if err != nil {
		im.log.ErrorContext(ctx, "fetch translation", slog.String("word", text), slog.String("error", err.Error()))
		return outcomeError
	}
	if payload == nil {
		im.log.InfoContext(ctx, "no translation available", slog.String("word", text))
		return outcomeSkipped
	}

	if im.cfg.DryRun {
		im.log.InfoContext(ctx, "dry run, skipping import", slog.String("word", text))
		return outcomeSkipped
	}

	input := translation.ImportInput{
		SourceWordID:   word.ID,
		SourceWordText: word.Text,
		SourceLanguage: lang,
		TargetLanguage: im.target,
		Payload:        *payload,
	}
	for _, d := range defs {
		src := translation.SourceDefinition{ID: d.ID, Text: d.Text}
		for _, ex := range d.Examples {
			src.Examples = append(src.Examples, translation.SourceExample{ID: ex.ID, Text: ex.Text})
		}
		input.Definitions = append(input.Definitions, src)
	}

	importCtx, cancel := im.withTxTimeout(ctx)
	defer cancel()

	if err := im.svc.ImportTranslation(importCtx, input); err != nil {
		im.log.ErrorContext(ctx, "import translation", slog.String("word", text), slog.String("error", err.Error()))
		return outcomeError
	}

	return outcomeImported
}

func buildRequest(word *domain.Word, defs []domain.Definition, target domain.LanguageCode) provider.TranslationRequest {
	req := provider.TranslationRequest{
		WordID:       word.ID,
		WordText:     word.Text,
		LanguageCode: word.LanguageCode.String(),
		TargetLang:   target.String(),
	}
	if word.PhoneticGeneral != nil {
		req.Phonetic = *word.PhoneticGeneral
	}
	for _, d := range defs {
		rd := provider.RequestDefinition{ID: d.ID, Text: d.Text}
		for _, ex := range d.Examples {
			rd.Examples = append(rd.Examples, provider.RequestExample{ID: ex.ID, Text: ex.Text})
		}
		req.Definitions = append(req.Definitions, rd)
	}
	return req
}

func (im *Importer) withTxTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if im.cfg.TxTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, im.cfg.TxTimeout)
}

func (im *Importer) concurrency() int {
	if im.cfg.Concurrency < 1 {
		return 1
	}
	return im.cfg.Concurrency
}

func (im *Importer) logSummary(ctx context.Context, result Result) {
	im.log.InfoContext(ctx, "translate-import complete",
		slog.Int("processed", result.FilesProcessed),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
	)
}
