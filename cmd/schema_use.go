package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/spf13/cobra"
)

var schemaUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Set a default schema",
	Long:  "Verify the schema is reachable, then record it as the default for future operations",
	Args:  cobra.ExactArgs(1),
	Run:   runSchemaUse,
}

func runSchemaUse(cmd *cobra.Command, args []string) {
	name := args[0]

	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	// connect with the schema selected to prove it exists
	probe := *dbConfig
	probe.Database = name

	ctx := context.Background()
	client, err := mysql.Connect(ctx, &probe)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to use schema '%s': %v", name, err)))
		os.Exit(1)
	}
	client.Close()

	if err := store.SetDefaultDatabase(name); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to save configuration: %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] connected to schema '%s'", name)))
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] default schema set to '%s'", name)))
}

func init() {
	schemaCmd.AddCommand(schemaUseCmd)
}
