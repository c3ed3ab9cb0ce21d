package config

import "time"

// Config holds runtime settings for the Vyapkart CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Vyapkart backend.
//   - FirebaseAPIKey: the Firebase project's web API key.
//   - FirebaseBaseURL: identitytoolkit endpoint; overridden in tests.
//   - DatabasePath: sqlite file holding the persisted session.
//   - RequestTimeout: per-request timeout for all outgoing HTTP calls.
//   - LogLevel: zerolog level name (debug, info, warn, error).
type Config struct {
	APIBaseURL      string        `env:"VYAPKART_API_BASE_URL"`
	FirebaseAPIKey  string        `env:"VYAPKART_FIREBASE_API_KEY"`
	FirebaseBaseURL string        `env:"VYAPKART_FIREBASE_BASE_URL"`
	DatabasePath    string        `env:"VYAPKART_DB_PATH"`
	RequestTimeout  time.Duration `env:"VYAPKART_REQUEST_TIMEOUT"`
	LogLevel        string        `env:"VYAPKART_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.FirebaseBaseURL = "https://identitytoolkit.googleapis.com"
	c.DatabasePath = "vyapkart.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
