package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/qradmin/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIURL   = "QRADMIN_API_URL"
	EnvLogLevel = "QRADMIN_LOG_LEVEL"
)

// parseEnv overlays Config with environment variables. An explicitly named
// env file must exist; the implicit ./.env is optional.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
