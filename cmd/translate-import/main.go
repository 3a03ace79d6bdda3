// Command translate-import ingests machine-translated dictionary content
// into PostgreSQL. It either reads payload *.json files from a configured
// directory, or, with --words, fetches translations from the translation
// service for words that are already persisted.
//
// Flags:
//
//	--words  comma-separated word texts to translate and import (optional;
//	         without it the payload directory is imported)
//	--lang   language code of the --words list (default "da")
//
// Exit codes: 0 = success, 1 = error, 2 = completed with per-word errors.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/ordbog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ordbog-backend/internal/adapter/postgres/definition"
	translationrepo "github.com/heartmarshall/ordbog-backend/internal/adapter/postgres/translation"
	"github.com/heartmarshall/ordbog-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/ordbog-backend/internal/adapter/postgres/wordrelation"
	"github.com/heartmarshall/ordbog-backend/internal/adapter/provider/aitranslate"
	"github.com/heartmarshall/ordbog-backend/internal/app"
	"github.com/heartmarshall/ordbog-backend/internal/app/translate_importer"
	"github.com/heartmarshall/ordbog-backend/internal/config"
	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/service/translation"
)

func main() {
	wordsFlag := flag.String("words", "", "comma-separated word texts to translate and import")
	langFlag := flag.String("lang", "da", "language code of the --words list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("translate-import starting", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	words := word.New(pool)
	relations := wordrelation.New(pool)
	definitions := definition.New(pool)
	translations := translationrepo.New(pool)

	svc := translation.NewService(logger, words, relations, definitions, translations, txm)
	client := aitranslate.NewClient(cfg.Translate, logger)

	target := domain.LanguageCode(cfg.Translate.TargetLanguage)
	importer := translate_importer.New(cfg.Import, target, svc, words, definitions, client, logger)

	if cfg.Import.DryRun {
		logger.Info("dry-run mode: no DB writes")
	}

	var result translate_importer.Result
	if *wordsFlag != "" {
		texts := splitWords(*wordsFlag)
		result, err = importer.RunWords(ctx, texts, domain.LanguageCode(*langFlag))
	} else {
		result, err = importer.RunDir(ctx)
	}
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.Errors > 0 {
		os.Exit(2)
	}
}

func splitWords(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
