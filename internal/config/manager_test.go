package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	token, err := store.Encrypt("s3cret-pa$$word")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pa$$word", token)

	plain, err := store.Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pa$$word", plain)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	storeA := NewManagerAt(t.TempDir())
	require.NoError(t, storeA.EnsureDirs())

	token, err := storeA.Encrypt("secret")
	require.NoError(t, err)

	storeB := NewManagerAt(t.TempDir())
	require.NoError(t, storeB.EnsureDirs())
	_, err = storeB.Encrypt("prime the key file")
	require.NoError(t, err)

	_, err = storeB.Decrypt(token)
	assert.Error(t, err)
}

func TestDecryptWithoutKeyFileFails(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	_, err := store.Decrypt("gAAAAAnot-a-real-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encryption key not found")
}

func TestSaveAndLoadDatabase(t *testing.T) {
	dir := t.TempDir()
	store := NewManagerAt(dir)
	require.NoError(t, store.EnsureDirs())

	err := store.SaveDatabase(&models.DatabaseConfig{
		Host:     "10.0.0.5",
		Port:     "3306",
		Username: "admin",
		Password: "hunter2",
	})
	require.NoError(t, err)

	// the password must never hit disk in the clear
	raw, err := os.ReadFile(filepath.Join(dir, ".heatwaved", "config.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")

	loaded, err := store.LoadDatabase()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "10.0.0.5", loaded.Host)
	assert.Equal(t, "3306", loaded.Port)
	assert.Equal(t, "admin", loaded.Username)
	assert.Equal(t, "hunter2", loaded.Password)
}

func TestLoadDatabaseWhenUnconfigured(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	loaded, err := store.LoadDatabase()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSetDefaultDatabaseKeepsPassword(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	require.NoError(t, store.SaveDatabase(&models.DatabaseConfig{
		Host:     "localhost",
		Port:     "3306",
		Username: "admin",
		Password: "hunter2",
	}))

	require.NoError(t, store.SetDefaultDatabase("analytics"))

	loaded, err := store.LoadDatabase()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "analytics", loaded.Database)
	assert.Equal(t, "hunter2", loaded.Password)
}

func TestSetDefaultDatabaseWithoutConfig(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	err := store.SetDefaultDatabase("analytics")
	assert.Error(t, err)
}

func TestSaveOCIPreservesDatabaseSection(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	require.NoError(t, store.EnsureDirs())

	require.NoError(t, store.SaveDatabase(&models.DatabaseConfig{
		Host:     "localhost",
		Port:     "3306",
		Username: "admin",
		Password: "hunter2",
	}))

	rawConfig := "[DEFAULT]\nuser=ocid1.user.oc1..aaa\nregion=eu-frankfurt-1\n"
	require.NoError(t, store.SaveOCI(rawConfig, "DEFAULT"))

	ociConfig, err := store.LoadOCI()
	require.NoError(t, err)
	require.NotNil(t, ociConfig)
	assert.True(t, ociConfig.Configured)
	assert.Equal(t, "DEFAULT", ociConfig.Profile)
	assert.Equal(t, store.OCIConfigPath(), ociConfig.ConfigPath)

	written, err := os.ReadFile(store.OCIConfigPath())
	require.NoError(t, err)
	assert.Equal(t, rawConfig, string(written))

	dbConfig, err := store.LoadDatabase()
	require.NoError(t, err)
	require.NotNil(t, dbConfig)
	assert.Equal(t, "hunter2", dbConfig.Password)
}

func TestEnsureDirsWritesGitignore(t *testing.T) {
	dir := t.TempDir()
	store := NewManagerAt(dir)
	require.NoError(t, store.EnsureDirs())

	data, err := os.ReadFile(filepath.Join(dir, ".heatwaved", ".gitignore"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "*\n"))
	assert.Contains(t, string(data), "!.gitignore")
}

func TestIsInitialized(t *testing.T) {
	store := NewManagerAt(t.TempDir())
	assert.False(t, store.IsInitialized())

	require.NoError(t, store.EnsureDirs())
	assert.False(t, store.IsInitialized())

	require.NoError(t, store.SaveDatabase(&models.DatabaseConfig{
		Host:     "localhost",
		Port:     "3306",
		Username: "admin",
		Password: "pw",
	}))
	assert.True(t, store.IsInitialized())
}
