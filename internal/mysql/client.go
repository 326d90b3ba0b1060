package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/heatwave-cli/heatwaved/pkg/models"
)

const connectTimeout = 10 * time.Second

// Client wraps a database/sql handle to a HeatWave DB system.
type Client struct {
	db *sql.DB
}

// DSN builds the driver DSN from the stored configuration. The port is
// stored as a string (it comes from a prompt) and validated here.
func DSN(cfg *models.DatabaseConfig) (string, error) {
	port := cfg.Port
	if port == "" {
		port = "3306"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	driverCfg := mysql.NewConfig()
	driverCfg.User = cfg.Username
	driverCfg.Passwd = cfg.Password
	driverCfg.Net = "tcp"
	driverCfg.Addr = net.JoinHostPort(cfg.Host, port)
	driverCfg.DBName = cfg.Database
	driverCfg.Timeout = connectTimeout
	driverCfg.TLSConfig = "preferred"

	return driverCfg.FormatDSN(), nil
}

// Connect opens and pings a connection.
func Connect(ctx context.Context, cfg *models.DatabaseConfig) (*Client, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Host, err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Version returns SELECT VERSION().
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	if err := c.db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&version); err != nil {
		return "", fmt.Errorf("failed to query version: %w", err)
	}
	return version, nil
}

// Variable is a server variable name/value pair.
type Variable struct {
	Name  string
	Value string
}

// HeatWaveVariables lists the rapid_* server variables. An empty result
// means the cluster has no HeatWave nodes attached.
func (c *Client) HeatWaveVariables(ctx context.Context) ([]Variable, error) {
	rows, err := c.db.QueryContext(ctx, "SHOW VARIABLES LIKE 'rapid_%'")
	if err != nil {
		return nil, fmt.Errorf("failed to query HeatWave variables: %w", err)
	}
	defer rows.Close()

	var vars []Variable
	for rows.Next() {
		var v Variable
		if err := rows.Scan(&v.Name, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan variable: %w", err)
		}
		vars = append(vars, v)
	}

	return vars, rows.Err()
}

// Exec runs a single statement.
func (c *Client) Exec(ctx context.Context, stmt string, args ...any) error {
	if _, err := c.db.ExecContext(ctx, stmt, args...); err != nil {
		return err
	}
	return nil
}
