package cmd

import (
	"github.com/spf13/cobra"
)

var genaiCmd = &cobra.Command{
	Use:   "genai",
	Short: "Manage HeatWave GenAI features",
	Long:  "Set up and check the permissions HeatWave GenAI needs",
}

func init() {
	rootCmd.AddCommand(genaiCmd)
}
