package cmd

import (
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/config"
	"github.com/spf13/cobra"
)

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration directory path",
	Run:   runConfigPath,
}

func runConfigPath(cmd *cobra.Command, args []string) {
	store, err := config.NewManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println(store.Dir)
}

func init() {
	configCmd.AddCommand(configPathCmd)
}
