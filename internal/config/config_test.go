package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"port": 9090, "database_url": "postgres://localhost/travel", "allowed_origins": ["https://app.example.com"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/travel", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg.Port = -1
	assert.Error(t, cfg.Validate())

	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/travel")

	cfg := &Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "postgres://env/travel", cfg.DatabaseURL)

	cfg = &Config{DatabaseURL: "postgres://file/travel"}
	cfg.ApplyEnv()
	assert.Equal(t, "postgres://file/travel", cfg.DatabaseURL)
}
