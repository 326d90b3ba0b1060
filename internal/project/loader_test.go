package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[schema]
charset = "latin1"

[generate]
model = "mistral-7b-instruct-v3"

[local]
port = 13306
`)

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "latin1", config.Schema.Charset)
	assert.Equal(t, "mistral-7b-instruct-v3", config.Generate.Model)
	assert.Equal(t, 13306, config.Local.Port)

	// unset fields fall back to defaults
	assert.Equal(t, "utf8mb4_0900_ai_ci", config.Schema.Collation)
	assert.Equal(t, "en", config.Generate.Language)
	assert.Equal(t, "mysql:8.4", config.Local.Image)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[schema\ncharset = ")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigIfExistsMissingFile(t *testing.T) {
	config, err := LoadConfigIfExists(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), config)
}

func TestDefaults(t *testing.T) {
	config := Defaults()

	assert.Equal(t, "utf8mb4", config.Schema.Charset)
	assert.Equal(t, "utf8mb4_0900_ai_ci", config.Schema.Collation)
	assert.Equal(t, "en", config.Generate.Language)
	assert.Equal(t, "HeatWaveBucket-dG", config.Lakehouse.DynamicGroup)
	assert.Equal(t, "HeatWaveBucket-Policy", config.Lakehouse.Policy)
	assert.Equal(t, "mysql:8.4", config.Local.Image)
	assert.Equal(t, 3306, config.Local.Port)
}

func TestStarterConfigParses(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, StarterConfig())

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "utf8mb4", config.Schema.Charset)
	assert.Equal(t, 3306, config.Local.Port)
}
