package cmd

import (
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage database schemas",
	Long:  "Create, list, drop and select schemas on the HeatWave DB system",
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
