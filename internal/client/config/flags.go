package config

import (
	"flag"
	"os"
	"time"

	"github.com/me22abd/campusconnect-client/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-a string   base URL of the backend API
//	-t int      request timeout in seconds
//	-v string   path to the local vault database
//
// os.Args is filtered to the flags handled here so the config-file flags
// parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.VaultPath, "v", cfg.VaultPath, "path to the local vault database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
