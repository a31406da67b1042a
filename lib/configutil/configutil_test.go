package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Output  string `json:"output"`
	BaseUrl string `json:"base_url"`
}

func TestReadMissingConfig(t *testing.T) {
	_, err := Read[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadEmptyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	// an empty file should not look like a missing one
	_, err := Read[testConfig](path)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "empty")
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(
		`{output: "data/catalog", base_url: "https://registrar.test"}`,
	), 0644))

	cfg, err := Read[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "data/catalog", cfg.Output)
	require.Equal(t, "https://registrar.test", cfg.BaseUrl)
}

func TestReadConfigWithLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(
		`{output: "data/catalog", base_url: "https://registrar.test"}`,
	), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(
		`{base_url: "http://localhost:9999"}`,
	), 0644))

	cfg, err := Read[testConfig](path)
	require.NoError(t, err)
	// the local file overrides, everything else passes through
	require.Equal(t, "http://localhost:9999", cfg.BaseUrl)
	require.Equal(t, "data/catalog", cfg.Output)
}
