// Package config holds runtime settings for the CampusConnect CLI and their
// layered loading: defaults first, then a JSON file, then command-line flags,
// later sources overriding earlier ones.
package config

import "time"

// Config holds runtime settings.
//
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: fixed per-request timeout applied by the gateway.
//   - VaultPath: location of the local secret database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	VaultPath      string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.VaultPath = "campusconnect.db"
}

// LoadConfig constructs a Config from defaults, JSON (if a file was given)
// and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
