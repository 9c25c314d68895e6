package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/qradmin/internal/flagx"
	"github.com/dmitrijs2005/qradmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	APIURL         *string         `json:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	PageSize       *int            `json:"page_size"`
	DBPath         *string         `json:"db_path"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with the file named by -c/-config, if any.
// It panics on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != nil {
		cfg.BaseURL = *jc.APIURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
