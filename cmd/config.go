package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage HeatWave configuration",
	Long:  "Inspect the configuration stored under .heatwaved/",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
