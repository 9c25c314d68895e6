package config

import (
	"time"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
)

// Config holds runtime settings for the console.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api.
	BaseURL        string
	RequestTimeout time.Duration
	PageSize       int
	DBPath         string
	LogLevel       string
}

func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.PageSize = models.DefaultPageSize
	c.DBPath = "qradmin.db"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then environment, JSON and flags, each
// overriding the previous one.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
