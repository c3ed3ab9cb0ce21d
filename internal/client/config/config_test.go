package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"vyapkart-cli"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	require.Equal(t, "https://identitytoolkit.googleapis.com", cfg.FirebaseBaseURL)
	require.Equal(t, "vyapkart.db", cfg.DatabasePath)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("VYAPKART_API_BASE_URL", "https://api.vyapkart.store")
	t.Setenv("VYAPKART_REQUEST_TIMEOUT", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://api.vyapkart.store", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Untouched fields keep their defaults.
	require.Equal(t, "vyapkart.db", cfg.DatabasePath)
}

func TestParseJson_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "api_base_url": "https://json.example",
  "firebase_api_key": "AIza-json",
  "request_timeout": "7s"
}`), 0o600))

	withArgs(t, "-c", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://json.example", cfg.APIBaseURL)
	require.Equal(t, "AIza-json", cfg.FirebaseAPIKey)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestParseJson_BadDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": "soon"}`), 0o600))

	withArgs(t, "-c", path)

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestParseFlags_OverrideEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example"}`), 0o600))

	withArgs(t, "-c", path, "-a", "https://flags.example", "-d", "other.db", "-t", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://flags.example", cfg.APIBaseURL)
	require.Equal(t, "other.db", cfg.DatabasePath)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
