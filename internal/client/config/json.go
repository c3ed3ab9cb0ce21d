package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vyapkart/vyapkart-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// strings in Go duration syntax ("15s"); after parsing, values are copied
// into the runtime Config. Absent fields leave earlier values in place.
type JsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	FirebaseAPIKey  string `json:"firebase_api_key"`
	FirebaseBaseURL string `json:"firebase_base_url"`
	DatabasePath    string `json:"database_path"`
	RequestTimeout  string `json:"request_timeout"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Intended usage is: defaults -> env -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.FirebaseAPIKey != "" {
		cfg.FirebaseAPIKey = jc.FirebaseAPIKey
	}
	if jc.FirebaseBaseURL != "" {
		cfg.FirebaseBaseURL = jc.FirebaseBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
