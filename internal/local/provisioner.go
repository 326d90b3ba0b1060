package local

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/heatwave-cli/heatwaved/internal/docker"
	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/lucsky/cuid"
)

const (
	mysqlDataDir      = "/var/lib/mysql"
	mysqlInternalPort = 3306
	mysqlUser         = "root"
)

// Provisioner runs disposable MySQL containers for POC work without a
// cloud tenancy.
type Provisioner struct {
	dockerClient *docker.Client
	registry     *RegistryManager
}

func NewProvisioner(dockerClient *docker.Client, registry *RegistryManager) *Provisioner {
	return &Provisioner{
		dockerClient: dockerClient,
		registry:     registry,
	}
}

// Provision pulls the image, creates the data volume and container, starts
// it and records it in the registry. The port is published on loopback
// only.
func (p *Provisioner) Provision(name, image, password string, hostPort int) (*models.LocalInstance, error) {
	instanceID := fmt.Sprintf("hw-%s", cuid.Slug())
	containerName := fmt.Sprintf("heatwaved-local-%s", name)
	volumeName := fmt.Sprintf("heatwaved-vol-%s", instanceID)

	if password == "" {
		var err error
		password, err = generatePassword(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate password: %w", err)
		}
	}

	if err := p.dockerClient.CreateVolume(volumeName, name, instanceID); err != nil {
		return nil, fmt.Errorf("failed to create volume: %w", err)
	}

	if err := p.dockerClient.PullImage(image, os.Stdout); err != nil {
		_ = p.dockerClient.DeleteVolume(volumeName)
		return nil, fmt.Errorf("failed to pull image: %w", err)
	}

	spec := docker.CreateSpec{
		Name:  containerName,
		Image: image,
		Env: []string{
			fmt.Sprintf("MYSQL_ROOT_PASSWORD=%s", password),
		},
		Labels: map[string]string{
			"heatwaved.managed":    "true",
			"heatwaved.local.name": name,
			"heatwaved.local.id":   instanceID,
		},
		VolumeName:   volumeName,
		VolumeTarget: mysqlDataDir,
		InternalPort: mysqlInternalPort,
		HostPort:     hostPort,
	}

	containerID, err := p.dockerClient.CreateContainer(spec)
	if err != nil {
		_ = p.dockerClient.DeleteVolume(volumeName)
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	if err := p.dockerClient.StartContainer(containerID); err != nil {
		_ = p.dockerClient.RemoveContainer(containerID)
		_ = p.dockerClient.DeleteVolume(volumeName)
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	now := time.Now()
	instance := models.LocalInstance{
		ID:            instanceID,
		Name:          name,
		Image:         image,
		ContainerID:   containerID,
		ContainerName: containerName,
		VolumeName:    volumeName,
		Port:          hostPort,
		Username:      mysqlUser,
		Password:      password,
		CreatedAt:     now,
		UpdatedAt:     now,
		Status:        models.InstanceStatusRunning,
	}

	if err := p.registry.Add(instance); err != nil {
		_ = p.dockerClient.StopContainer(containerID)
		_ = p.dockerClient.RemoveContainer(containerID)
		_ = p.dockerClient.DeleteVolume(volumeName)
		return nil, err
	}

	return &instance, nil
}

// Destroy stops and removes the container and volume, then drops the
// registry entry.
func (p *Provisioner) Destroy(name string, keepVolume bool) error {
	instance, err := p.registry.Get(name)
	if err != nil {
		return err
	}

	// container may already be stopped; removal below is what matters
	_ = p.dockerClient.StopContainer(instance.ContainerID)

	if err := p.dockerClient.RemoveContainer(instance.ContainerID); err != nil {
		return err
	}

	if !keepVolume {
		if err := p.dockerClient.DeleteVolume(instance.VolumeName); err != nil {
			return err
		}
	}

	return p.registry.Remove(name)
}

func generatePassword(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes)[:length], nil
}
