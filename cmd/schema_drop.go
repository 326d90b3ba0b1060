package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/heatwave-cli/heatwaved/internal/utils"
	"github.com/spf13/cobra"
)

var dropForce bool

var schemaDropCmd = &cobra.Command{
	Use:   "drop [name]",
	Short: "Drop a schema",
	Long:  "Permanently drop a schema (database) from the HeatWave DB system",
	Args:  cobra.ExactArgs(1),
	Run:   runSchemaDrop,
}

func runSchemaDrop(cmd *cobra.Command, args []string) {
	name := args[0]

	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	if utils.IsSystemSchema(strings.ToLower(name)) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] cannot drop system schema '%s'", name)))
		os.Exit(1)
	}

	if !dropForce {
		fmt.Println(errorStyle.Render(fmt.Sprintf("WARNING: this will permanently delete schema '%s'", name)))

		reader := bufio.NewReader(os.Stdin)
		confirmed, err := promptYesNo(reader, fmt.Sprintf("are you sure you want to drop schema '%s'? (y/N): ", name), false)
		if err != nil || !confirmed {
			fmt.Println(dimStyle.Render("  operation cancelled"))
			os.Exit(1)
		}
	}

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	if err := client.DropSchema(ctx, name); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] schema '%s' dropped", name)))
}

func init() {
	schemaDropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "Skip confirmation prompt")
	schemaCmd.AddCommand(schemaDropCmd)
}
