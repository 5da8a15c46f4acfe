// Package config loads process configuration from the environment and an
// optional .env file.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
)

// DefaultEnvFile is read before the environment when present
const DefaultEnvFile = ".env"

// Config is the process configuration
type Config struct {
	DBPath   string `env:"RPG_DB_PATH" envDefault:"rpg-campaigns.db"`
	HTTPPort int    `env:"RPG_HTTP_PORT" envDefault:"8080"`

	// RedisAddr enables the report cache when set
	RedisAddr      string        `env:"REDIS_ADDR"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"5m"`

	DND5eBaseURL     string        `env:"DND5E_BASE_URL"`
	DND5eHTTPTimeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`

	// CatalogSyncInterval of zero disables the scheduled import
	CatalogSyncInterval time.Duration `env:"CATALOG_SYNC_INTERVAL" envDefault:"0s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the env files (DefaultEnvFile when none are given), then parses
// the environment. Missing env files are skipped. Values already set in the
// environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "error loading env file %s", file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "error parsing environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("RPG_DB_PATH", c.DBPath, vb)
	errors.ValidateRange("RPG_HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	if c.ReportCacheTTL <= 0 {
		vb.Field("REPORT_CACHE_TTL", "must be positive")
	}
	if c.DND5eHTTPTimeout <= 0 {
		vb.Field("DND5E_HTTP_TIMEOUT", "must be positive")
	}
	if c.CatalogSyncInterval < 0 {
		vb.Field("CATALOG_SYNC_INTERVAL", "must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LOG_LEVEL", c.LogLevel)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		vb.InvalidField("LOG_FORMAT", c.LogFormat)
	}
	return vb.Build()
}

// CacheEnabled reports whether a redis address is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// SetupLogging installs the default slog logger described by the config
func (c *Config) SetupLogging(w io.Writer) error {
	return logging.Setup(w, c.LogFormat, c.LogLevel)
}
