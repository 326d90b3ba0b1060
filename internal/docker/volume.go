package docker

import (
	"fmt"

	"github.com/docker/docker/api/types/volume"
)

func (c *Client) CreateVolume(volumeName string, instanceName string, instanceID string) error {
	_, err := c.cli.VolumeCreate(c.ctx, volume.CreateOptions{
		Name:   volumeName,
		Driver: "local",
		Labels: map[string]string{
			"heatwaved.managed":    "true",
			"heatwaved.local.name": instanceName,
			"heatwaved.local.id":   instanceID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create volume: %w", err)
	}

	return nil
}

func (c *Client) DeleteVolume(volumeName string) error {
	if err := c.cli.VolumeRemove(c.ctx, volumeName, true); err != nil {
		return fmt.Errorf("failed to delete volume: %w", err)
	}

	return nil
}
