package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/utils"
	"github.com/spf13/cobra"
)

var listPattern string

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemas",
	Long:  "List schemas (databases) on the HeatWave DB system",
	Run:   runSchemaList,
}

func runSchemaList(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	schemas, err := client.ListSchemas(ctx, listPattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to list schemas: %v", err)))
		os.Exit(1)
	}

	if len(schemas) == 0 {
		fmt.Println(warnStyle.Render("[warn] no schemas found"))
		return
	}

	fmt.Println(titleStyle.Render("==> available schemas"))
	fmt.Println()

	shown := 0
	for _, schema := range schemas {
		// hide system schemas unless the user asked for a pattern
		if utils.IsSystemSchema(schema) && (listPattern == "" || listPattern == "%") {
			continue
		}
		fmt.Printf("    %s\n", valueStyle.Render(schema))
		shown++
	}

	if shown == 0 {
		fmt.Println(dimStyle.Render("    (only system schemas present)"))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  total schemas: %d", len(schemas))))
}

func init() {
	schemaListCmd.Flags().StringVar(&listPattern, "pattern", "", "Filter schemas by pattern (supports % wildcard)")
	schemaCmd.AddCommand(schemaListCmd)
}
