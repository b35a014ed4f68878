package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := Config{ServerURL: "http://shopping.lan:8000", Currency: "EUR"}

	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFrom_MissingCurrencyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://h:1\n"), 0o644))

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "http://h:1", cfg.ServerURL)
	assert.Equal(t, "€", cfg.Currency)
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [broken"), 0o644))

	_, err := LoadFrom(path)

	assert.Error(t, err)
}
