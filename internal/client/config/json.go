package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/me22abd/campusconnect-client/internal/flagx"
	"github.com/me22abd/campusconnect-client/internal/timex"
)

// jsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the file
// specify the timeout either as a string like "10s" or as nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	VaultPath      string         `json:"vault_path"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. Absent flags mean no JSON is loaded. Only fields present
// in the file override the current values.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.VaultPath != "" {
		cfg.VaultPath = jc.VaultPath
	}
}
