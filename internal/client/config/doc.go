// Package config loads runtime configuration for the Vyapkart CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including a .env file in the working directory
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-k string   Firebase web API key
//	-d string   path to the local sqlite database
//	-t string   request timeout, as a Go duration (e.g. "15s")
//
// # JSON schema
//
// Durations are strings in Go duration syntax:
//
//	{
//	  "api_base_url": "https://api.vyapkart.store",
//	  "firebase_api_key": "AIza...",
//	  "firebase_base_url": "https://identitytoolkit.googleapis.com",
//	  "database_path": "vyapkart.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — the resolved runtime settings
//   - func LoadConfig() (*Config, error) — applies defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
