package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/spf13/cobra"
)

var genaiCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check HeatWave GenAI permissions",
	Long:  "List the current user's GenAI-related grants",
	Run:   runGenaiCheck,
}

func runGenaiCheck(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> heatwave genai permissions for %s", dbConfig.Username)))
	fmt.Println()

	grants, err := client.CurrentGrants(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to check permissions: %v", err)))
		os.Exit(1)
	}

	genaiGrants := mysql.FilterGenAIGrants(grants)
	if len(genaiGrants) == 0 {
		fmt.Println(warnStyle.Render("  [warn] no GenAI-related permissions found"))
		fmt.Println(dimStyle.Render("  run 'heatwaved genai setup' to configure permissions"))
		return
	}

	fmt.Println(successStyle.Render("  [done] GenAI-related permissions found:"))
	for _, grant := range genaiGrants {
		fmt.Printf("    %s\n", valueStyle.Render(grant))
	}
	fmt.Println()
}

func init() {
	genaiCmd.AddCommand(genaiCheckCmd)
}
