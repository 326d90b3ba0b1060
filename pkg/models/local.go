package models

import "time"

type InstanceStatus string

const (
	InstanceStatusRunning InstanceStatus = "running"
	InstanceStatusStopped InstanceStatus = "stopped"
	InstanceStatusError   InstanceStatus = "error"
)

// LocalInstance is a MySQL container managed by 'heatwaved local'.
type LocalInstance struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	ContainerID   string `json:"container_id"`
	ContainerName string `json:"container_name"`
	VolumeName    string `json:"volume_name"`
	Port          int    `json:"port"`
	Username      string `json:"username"`
	Password      string `json:"password"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Status    InstanceStatus `json:"status"`
}

type LocalRegistry struct {
	Instances []LocalInstance `json:"instances"`
}
