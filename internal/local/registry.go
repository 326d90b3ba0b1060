package local

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heatwave-cli/heatwaved/pkg/models"
)

var mu sync.Mutex // protects concurrent access to the registry file

// RegistryManager persists local MySQL instances in .heatwaved/local.json.
type RegistryManager struct {
	path string
}

func NewRegistryManager(path string) *RegistryManager {
	return &RegistryManager{path: path}
}

func (r *RegistryManager) Initialize() error {
	mu.Lock()
	defer mu.Unlock()

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		registry := models.LocalRegistry{
			Instances: []models.LocalInstance{},
		}

		data, err := json.MarshalIndent(registry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal registry: %w", err)
		}

		if err := os.WriteFile(r.path, data, 0600); err != nil {
			return fmt.Errorf("failed to write registry: %w", err)
		}
	}

	return nil
}

func (r *RegistryManager) Read() (*models.LocalRegistry, error) {
	mu.Lock()
	defer mu.Unlock()

	return r.read()
}

func (r *RegistryManager) read() (*models.LocalRegistry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var registry models.LocalRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	return &registry, nil
}

func (r *RegistryManager) write(registry *models.LocalRegistry) error {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}

	return nil
}

func (r *RegistryManager) Add(instance models.LocalInstance) error {
	mu.Lock()
	defer mu.Unlock()

	registry, err := r.read()
	if err != nil {
		return err
	}

	for _, existing := range registry.Instances {
		if existing.Name == instance.Name {
			return fmt.Errorf("local instance '%s' already exists", instance.Name)
		}
	}

	registry.Instances = append(registry.Instances, instance)
	return r.write(registry)
}

func (r *RegistryManager) Remove(name string) error {
	mu.Lock()
	defer mu.Unlock()

	registry, err := r.read()
	if err != nil {
		return err
	}

	found := false
	remaining := []models.LocalInstance{}
	for _, instance := range registry.Instances {
		if instance.Name != name {
			remaining = append(remaining, instance)
		} else {
			found = true
		}
	}

	if !found {
		return fmt.Errorf("local instance '%s' not found", name)
	}

	registry.Instances = remaining
	return r.write(registry)
}

func (r *RegistryManager) Get(name string) (*models.LocalInstance, error) {
	mu.Lock()
	defer mu.Unlock()

	registry, err := r.read()
	if err != nil {
		return nil, err
	}

	for _, instance := range registry.Instances {
		if instance.Name == name {
			return &instance, nil
		}
	}

	return nil, fmt.Errorf("local instance '%s' not found", name)
}

func (r *RegistryManager) List() ([]models.LocalInstance, error) {
	registry, err := r.Read()
	if err != nil {
		return nil, err
	}

	return registry.Instances, nil
}
