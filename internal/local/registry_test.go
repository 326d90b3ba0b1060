package local

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *RegistryManager {
	t.Helper()
	registry := NewRegistryManager(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, registry.Initialize())
	return registry
}

func testInstance(name string) models.LocalInstance {
	now := time.Now()
	return models.LocalInstance{
		ID:            "hw-test" + name,
		Name:          name,
		Image:         "mysql:8.4",
		ContainerID:   "container-" + name,
		ContainerName: "heatwaved-local-" + name,
		VolumeName:    "heatwaved-vol-" + name,
		Port:          3306,
		Username:      "root",
		Password:      "pw",
		CreatedAt:     now,
		UpdatedAt:     now,
		Status:        models.InstanceStatusRunning,
	}
}

func TestRegistryAddAndGet(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.Add(testInstance("dev")))

	instance, err := registry.Get("dev")
	require.NoError(t, err)
	assert.Equal(t, "dev", instance.Name)
	assert.Equal(t, "mysql:8.4", instance.Image)
}

func TestRegistryAddDuplicateName(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.Add(testInstance("dev")))
	err := registry.Add(testInstance("dev"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegistryRemove(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.Add(testInstance("dev")))
	require.NoError(t, registry.Add(testInstance("poc")))

	require.NoError(t, registry.Remove("dev"))

	_, err := registry.Get("dev")
	assert.Error(t, err)

	instances, err := registry.List()
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "poc", instances[0].Name)
}

func TestRegistryRemoveMissing(t *testing.T) {
	registry := newTestRegistry(t)

	err := registry.Remove("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistryListEmpty(t *testing.T) {
	registry := newTestRegistry(t)

	instances, err := registry.List()
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestRegistryInitializeIsIdempotent(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.Add(testInstance("dev")))
	require.NoError(t, registry.Initialize())

	instances, err := registry.List()
	require.NoError(t, err)
	assert.Len(t, instances, 1)
}
