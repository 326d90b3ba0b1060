package cmd

import (
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/config"
	"github.com/heatwave-cli/heatwaved/internal/docker"
	"github.com/heatwave-cli/heatwaved/internal/local"
	"github.com/spf13/cobra"
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Run local MySQL instances for development",
	Long:  "Run disposable MySQL containers for POC work without a cloud tenancy",
}

// mustLocalRegistry works without 'heatwaved init'; local instances only
// need the .heatwaved directory, not stored credentials.
func mustLocalRegistry() *local.RegistryManager {
	store, err := config.NewManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if err := store.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	registry := local.NewRegistryManager(store.LocalRegistryPath())
	if err := registry.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to initialize registry: %v", err)))
		os.Exit(1)
	}

	return registry
}

func mustDockerClient() *docker.Client {
	dockerClient, err := docker.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to initialize container runtime: %v", err)))
		os.Exit(1)
	}

	return dockerClient
}

func init() {
	rootCmd.AddCommand(localCmd)
}
