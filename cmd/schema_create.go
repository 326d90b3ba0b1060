package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/utils"
	"github.com/spf13/cobra"
)

var (
	createCharset     string
	createCollation   string
	createIfNotExists bool
)

var schemaCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new schema",
	Long:  "Create a schema (database) on the HeatWave DB system",
	Args:  cobra.ExactArgs(1),
	Run:   runSchemaCreate,
}

func runSchemaCreate(cmd *cobra.Command, args []string) {
	name := args[0]

	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	if !utils.IsValidSchemaName(name) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] invalid schema name '%s'", name)))
		fmt.Println(dimStyle.Render("  schema names must start with a letter and contain only letters, numbers, and underscores"))
		os.Exit(1)
	}

	defaults := projectDefaults()
	if createCharset == "" {
		createCharset = defaults.Schema.Charset
	}
	if createCollation == "" {
		createCollation = defaults.Schema.Collation
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> creating schema: %s", name)))
	fmt.Printf("    %s %s\n", dimStyle.Render("character set:"), valueStyle.Render(createCharset))
	fmt.Printf("    %s %s\n", dimStyle.Render("collation:"), valueStyle.Render(createCollation))
	fmt.Println()

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	definition, err := client.CreateSchema(ctx, name, createCharset, createCollation, createIfNotExists)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] failed to create schema: %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] schema '%s' created", name)))
	if definition != "" {
		fmt.Println()
		fmt.Println(dimStyle.Render("  schema definition:"))
		fmt.Printf("    %s\n", valueStyle.Render(definition))
	}
	fmt.Println()
}

func init() {
	schemaCreateCmd.Flags().StringVar(&createCharset, "charset", "", "Character set for the schema (default utf8mb4)")
	schemaCreateCmd.Flags().StringVar(&createCollation, "collation", "", "Collation for the schema (default utf8mb4_0900_ai_ci)")
	schemaCreateCmd.Flags().BoolVar(&createIfNotExists, "if-not-exists", true, "Add IF NOT EXISTS clause")
	schemaCmd.AddCommand(schemaCreateCmd)
}
