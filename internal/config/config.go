package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Translate TranslateConfig `yaml:"translate"`
	Import    ImportConfig    `yaml:"import"`
	Log       LogConfig       `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// TranslateConfig holds translation-service client settings.
type TranslateConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"TRANSLATE_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"TRANSLATE_REQUEST_TIMEOUT" env-default:"30s"`
	TargetLanguage string        `yaml:"target_language" env:"TRANSLATE_TARGET_LANGUAGE" env-default:"en"`
}

// ImportConfig holds translation-import pipeline settings.
// TxTimeout bounds one word's transaction; a single import can make
// dozens of sequential find-or-create round-trips.
type ImportConfig struct {
	PayloadDir  string        `yaml:"payload_dir" env:"IMPORT_PAYLOAD_DIR" env-default:"./payloads"`
	Concurrency int           `yaml:"concurrency" env:"IMPORT_CONCURRENCY" env-default:"4"`
	DryRun      bool          `yaml:"dry_run"     env:"IMPORT_DRY_RUN"`
	TxTimeout   time.Duration `yaml:"tx_timeout"  env:"IMPORT_TX_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
