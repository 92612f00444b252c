package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docstow/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	// Point the default config location at an empty dir so a real
	// user config cannot leak into the test.
	t.Setenv("DOCSTOW_DOCUMENTS_DIR", "")
	t.Setenv("DOCSTOW_VERBOSITY", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Verbosity)
	assert.Empty(t, cfg.Documents.Dir)
	assert.Empty(t, cfg.Cache.Dir)
	assert.Empty(t, cfg.Cloud.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `verbosity = 2

[documents]
dir = "/srv/docs"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "/srv/docs", cfg.Documents.Dir)
	assert.Empty(t, cfg.Cache.Dir, "unset file keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[documents]\ndir = \"/from/file\"\n"), 0o644))

	t.Setenv("DOCSTOW_DOCUMENTS_DIR", "/from/env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Documents.Dir)
}

func TestEnvOnly(t *testing.T) {
	t.Setenv("DOCSTOW_CLOUD_DIR", "/mnt/container")
	t.Setenv("DOCSTOW_CACHE_DIR", "/var/cache/docstow")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/mnt/container", cfg.Cloud.Dir)
	assert.Equal(t, "/var/cache/docstow", cfg.Cache.Dir)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestGenerateRoundTrip(t *testing.T) {
	t.Setenv("DOCSTOW_DOCUMENTS_DIR", "")
	t.Setenv("DOCSTOW_VERBOSITY", "")

	original := &config.Config{
		Verbosity: 1,
		Documents: config.DirConfig{Dir: "/srv/docs"},
		Cache:     config.DirConfig{Dir: "/var/cache/docstow"},
	}

	path := filepath.Join(t.TempDir(), "generated", "config.toml")
	require.NoError(t, config.Generate(original, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Verbosity, loaded.Verbosity)
	assert.Equal(t, original.Documents.Dir, loaded.Documents.Dir)
	assert.Equal(t, original.Cache.Dir, loaded.Cache.Dir)
}
