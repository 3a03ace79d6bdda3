package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

translate:
  base_url: "http://localhost:9000"
  request_timeout: "20s"
  target_language: "en"

import:
  payload_dir: "/tmp/payloads"
  concurrency: 2
  tx_timeout: "45s"

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromEnvOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Database.MaxConns != 25 {
		t.Errorf("Database.MaxConns = %d, want default 25", cfg.Database.MaxConns)
	}
	if cfg.Import.Concurrency != 4 {
		t.Errorf("Import.Concurrency = %d, want default 4", cfg.Import.Concurrency)
	}
	if cfg.Import.TxTimeout != 30*time.Second {
		t.Errorf("Import.TxTimeout = %v, want default 30s", cfg.Import.TxTimeout)
	}
	if cfg.Translate.TargetLanguage != "en" {
		t.Errorf("Translate.TargetLanguage = %q, want default \"en\"", cfg.Translate.TargetLanguage)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want default \"json\"", cfg.Log.Format)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("Database.MaxConns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Translate.RequestTimeout != 20*time.Second {
		t.Errorf("Translate.RequestTimeout = %v, want 20s", cfg.Translate.RequestTimeout)
	}
	if cfg.Import.PayloadDir != "/tmp/payloads" {
		t.Errorf("Import.PayloadDir = %q", cfg.Import.PayloadDir)
	}
	if cfg.Import.TxTimeout != 45*time.Second {
		t.Errorf("Import.TxTimeout = %v, want 45s", cfg.Import.TxTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("IMPORT_CONCURRENCY", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Import.Concurrency != 8 {
		t.Errorf("Import.Concurrency = %d, want env override 8", cfg.Import.Concurrency)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error when DATABASE_DSN is missing")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for explicit missing config file")
	}
}

func TestValidate_BadConcurrency(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("IMPORT_CONCURRENCY", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for concurrency 0")
	}
}

func TestValidate_MaxConnsBelowMinConns(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_MAX_CONNS", "2")
	t.Setenv("DATABASE_MIN_CONNS", "5")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for max_conns < min_conns")
	}
}
