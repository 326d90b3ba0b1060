package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/config"
	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/heatwave-cli/heatwaved/internal/project"
	"github.com/heatwave-cli/heatwaved/pkg/models"
)

// mustStore exits when 'heatwaved init' has not been run here.
func mustStore() *config.Manager {
	store, err := config.NewManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if !store.IsInitialized() {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[error] HeatWave configuration not found"))
		fmt.Println(dimStyle.Render("  run 'heatwaved init' first"))
		os.Exit(1)
	}

	return store
}

func mustDatabaseConfig(store *config.Manager) *models.DatabaseConfig {
	dbConfig, err := store.LoadDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load database configuration: %v", err)))
		os.Exit(1)
	}
	if dbConfig == nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[error] database configuration not found"))
		fmt.Println(dimStyle.Render("  run 'heatwaved init' first"))
		os.Exit(1)
	}

	return dbConfig
}

func mustConnect(ctx context.Context, dbConfig *models.DatabaseConfig) *mysql.Client {
	client, err := mysql.Connect(ctx, dbConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to connect to database: %v", err)))
		os.Exit(1)
	}

	return client
}

func mustOCIClient(store *config.Manager) *oci.Client {
	ociConfig, err := store.LoadOCI()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load OCI configuration: %v", err)))
		os.Exit(1)
	}
	if ociConfig == nil || !ociConfig.Configured {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[error] OCI configuration not found"))
		fmt.Println(dimStyle.Render("  run 'heatwaved init --oci' first"))
		os.Exit(1)
	}

	client, err := oci.NewClient(ociConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	return client
}

// projectDefaults never fails the command; a broken heatwave.toml is
// reported and built-in defaults are used.
func projectDefaults() *models.ProjectConfig {
	cwd, err := os.Getwd()
	if err == nil {
		defaults, err := project.LoadConfigIfExists(cwd)
		if err == nil {
			return defaults
		}
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("[warn] ignoring %s: %v", project.ConfigFileName, err)))
	}

	return project.Defaults()
}
