package mysql

import (
	"testing"

	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn, err := DSN(&models.DatabaseConfig{
		Host:     "10.0.0.5",
		Port:     "3307",
		Username: "admin",
		Password: "hunter2",
		Database: "analytics",
	})
	require.NoError(t, err)

	assert.Contains(t, dsn, "admin:hunter2@tcp(10.0.0.5:3307)/analytics")
	assert.Contains(t, dsn, "tls=preferred")
}

func TestDSNDefaultsPort(t *testing.T) {
	dsn, err := DSN(&models.DatabaseConfig{
		Host:     "localhost",
		Username: "admin",
		Password: "pw",
	})
	require.NoError(t, err)

	assert.Contains(t, dsn, "tcp(localhost:3306)")
}

func TestDSNInvalidPort(t *testing.T) {
	_, err := DSN(&models.DatabaseConfig{
		Host:     "localhost",
		Port:     "not-a-port",
		Username: "admin",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}
