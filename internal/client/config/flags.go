package config

import (
	"flag"
	"os"
	"time"

	"github.com/vyapkart/vyapkart-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-k string   Firebase web API key
//	-d string   path to the local sqlite database
//	-t string   request timeout as a Go duration, e.g. "15s"
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t"})

	var timeout string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.FirebaseAPIKey, "k", cfg.FirebaseAPIKey, "Firebase web API key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local sqlite database")
	fs.StringVar(&timeout, "t", "", "request timeout (Go duration)")
	_ = fs.Parse(args)

	if timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
