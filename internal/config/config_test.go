package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".pinpoint", "index.db"), filepath.FromSlash(cfg.DBPath))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.Workers)
	assert.Empty(t, cfg.Languages)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinpoint.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: custom/index.db
languages: [go, python]
include:
  - "src/**"
exclude:
  - "**/vendor/**"
workers: 4
log:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/index.db", cfg.DBPath)
	assert.Equal(t, []string{"go", "python"}, cfg.Languages)
	assert.Equal(t, []string{"src/**"}, cfg.Include)
	assert.Equal(t, []string{"**/vendor/**"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinpoint.yml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\n"), 0o644))

	t.Setenv("PINPOINT_WORKERS", "8")
	t.Setenv("PINPOINT_DB", "env/index.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "env/index.db", cfg.DBPath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinpoint.yml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [not a number\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate_BadGlob(t *testing.T) {
	cfg := Default()
	cfg.Include = []string{"src/[unclosed"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := Default()
	cfg.Workers = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}
