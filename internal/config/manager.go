package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fernet/fernet-go"
	"github.com/heatwave-cli/heatwaved/pkg/models"
)

const (
	configDirName = ".heatwaved"
	ociDirName    = ".oci"
	storeFileName = "config.json"
	keyFileName   = ".key"
)

var mu sync.Mutex // protects the store file across goroutines

// Manager owns the .heatwaved configuration directory: the JSON store, the
// encryption key and the OCI config file copied under .oci/.
type Manager struct {
	Dir    string
	OCIDir string

	storePath string
	keyPath   string
	keys      []*fernet.Key
}

func NewManager() (*Manager, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return NewManagerAt(cwd), nil
}

// NewManagerAt roots the configuration directory at dir instead of the
// working directory.
func NewManagerAt(dir string) *Manager {
	configDir := filepath.Join(dir, configDirName)

	return &Manager{
		Dir:       configDir,
		OCIDir:    filepath.Join(configDir, ociDirName),
		storePath: filepath.Join(configDir, storeFileName),
		keyPath:   filepath.Join(configDir, keyFileName),
	}
}

// EnsureDirs creates the configuration directories and a .gitignore so the
// store never ends up in version control.
func (m *Manager) EnsureDirs() error {
	if err := os.MkdirAll(m.OCIDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	gitignorePath := filepath.Join(m.Dir, ".gitignore")
	if _, err := os.Stat(gitignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(gitignorePath, []byte("*\n!.gitignore\n"), 0644); err != nil {
			return fmt.Errorf("failed to write .gitignore: %w", err)
		}
	}

	return nil
}

// IsInitialized reports whether 'heatwaved init' has been run here.
func (m *Manager) IsInitialized() bool {
	if _, err := os.Stat(m.Dir); err != nil {
		return false
	}
	_, err := os.Stat(m.storePath)
	return err == nil
}

// OCIConfigPath is where the pasted OCI config file is written.
func (m *Manager) OCIConfigPath() string {
	return filepath.Join(m.OCIDir, "config")
}

// LocalRegistryPath is where the local instance registry lives.
func (m *Manager) LocalRegistryPath() string {
	return filepath.Join(m.Dir, "local.json")
}

func (m *Manager) readStore() (*models.StoreFile, error) {
	data, err := os.ReadFile(m.storePath)
	if os.IsNotExist(err) {
		return &models.StoreFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config store: %w", err)
	}

	var store models.StoreFile
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse config store: %w", err)
	}

	return &store, nil
}

func (m *Manager) writeStore(store *models.StoreFile) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config store: %w", err)
	}

	if err := os.WriteFile(m.storePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config store: %w", err)
	}

	return nil
}

// SaveDatabase encrypts the password and merges the database section into
// the store, preserving any OCI section.
func (m *Manager) SaveDatabase(db *models.DatabaseConfig) error {
	mu.Lock()
	defer mu.Unlock()

	encrypted, err := m.Encrypt(db.Password)
	if err != nil {
		return err
	}

	store, err := m.readStore()
	if err != nil {
		return err
	}

	saved := *db
	saved.Password = encrypted
	store.Database = &saved

	return m.writeStore(store)
}

// LoadDatabase returns the database section with the password decrypted,
// or nil when no database has been configured.
func (m *Manager) LoadDatabase() (*models.DatabaseConfig, error) {
	mu.Lock()
	defer mu.Unlock()

	store, err := m.readStore()
	if err != nil {
		return nil, err
	}

	if store.Database == nil {
		return nil, nil
	}

	db := *store.Database
	if db.Password != "" {
		plain, err := m.Decrypt(db.Password)
		if err != nil {
			return nil, err
		}
		db.Password = plain
	}

	return &db, nil
}

// SetDefaultDatabase records the default schema without touching the
// stored (still encrypted) password.
func (m *Manager) SetDefaultDatabase(name string) error {
	mu.Lock()
	defer mu.Unlock()

	store, err := m.readStore()
	if err != nil {
		return err
	}

	if store.Database == nil {
		return fmt.Errorf("database configuration not found")
	}

	store.Database.Database = name
	return m.writeStore(store)
}

// SaveOCI writes the raw OCI config file under .oci/ and records its
// location in the store.
func (m *Manager) SaveOCI(rawConfig string, profile string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.WriteFile(m.OCIConfigPath(), []byte(rawConfig), 0600); err != nil {
		return fmt.Errorf("failed to write OCI config file: %w", err)
	}

	store, err := m.readStore()
	if err != nil {
		return err
	}

	store.OCI = &models.OCIConfig{
		ConfigPath: m.OCIConfigPath(),
		Configured: true,
		Profile:    profile,
	}

	return m.writeStore(store)
}

// LoadOCI returns the OCI section, or nil when OCI has not been configured.
func (m *Manager) LoadOCI() (*models.OCIConfig, error) {
	mu.Lock()
	defer mu.Unlock()

	store, err := m.readStore()
	if err != nil {
		return nil, err
	}

	return store.OCI, nil
}
