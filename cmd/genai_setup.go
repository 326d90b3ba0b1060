package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/spf13/cobra"
)

var (
	genaiInputSchema  string
	genaiOutputSchema string
	genaiShowOnly     bool
)

var genaiSetupCmd = &cobra.Command{
	Use:   "setup [schema]",
	Short: "Set up HeatWave GenAI permissions",
	Long:  "Grant the current user the roles and privileges HeatWave GenAI needs",
	Args:  cobra.MaximumNArgs(1),
	Run:   runGenaiSetup,
}

func runGenaiSetup(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	reader := bufio.NewReader(os.Stdin)

	var schemaName string
	if len(args) > 0 {
		schemaName = args[0]
	} else {
		var err error
		schemaName, err = promptRequired(reader, "  schema name for GenAI operations: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
			os.Exit(1)
		}
	}

	inputSchema := genaiInputSchema
	if inputSchema == "" {
		inputSchema = schemaName
	}
	outputSchema := genaiOutputSchema
	if outputSchema == "" {
		outputSchema = schemaName
	}

	username := dbConfig.Username

	fmt.Println(titleStyle.Render("==> heatwave genai setup"))
	fmt.Printf("    %s %s\n", dimStyle.Render("user:"), valueStyle.Render(username))
	fmt.Printf("    %s %s\n", dimStyle.Render("main schema:"), valueStyle.Render(schemaName))
	fmt.Printf("    %s %s\n", dimStyle.Render("input schema:"), valueStyle.Render(inputSchema))
	fmt.Printf("    %s %s\n", dimStyle.Render("output schema:"), valueStyle.Render(outputSchema))
	fmt.Println()

	statements := mysql.GrantStatements(username, schemaName, inputSchema, outputSchema)

	fmt.Println(labelStyle.Render("  statements to be executed:"))
	for i, stmt := range statements {
		fmt.Printf("    %s %s\n", dimStyle.Render(fmt.Sprintf("%2d.", i+1)), valueStyle.Render(stmt))
	}
	fmt.Println()

	if genaiShowOnly {
		fmt.Println(warnStyle.Render("  [warn] --show-only set, statements not executed"))
		return
	}

	confirmed, err := promptYesNo(reader, "  execute these statements? (Y/n): ", true)
	if err != nil || !confirmed {
		fmt.Println(dimStyle.Render("  operation cancelled"))
		return
	}

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	fmt.Println()
	fmt.Println(progressStyle.Render("  --> executing grant statements"))

	failures := 0
	for i, stmt := range statements {
		if err := client.Exec(ctx, stmt); err != nil {
			// keep going; some grants legitimately fail on older versions
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("    [error] statement %d/%d failed: %v", i+1, len(statements), err)))
			failures++
			continue
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("    statement %d/%d executed", i+1, len(statements))))
	}

	fmt.Println()
	if failures == 0 {
		fmt.Println(successStyle.Render("  [done] HeatWave GenAI permissions setup completed"))
	} else {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  [warn] setup completed with %d failed statement(s)", failures)))
	}

	showPermissionSummary(ctx, client, username)
}

func showPermissionSummary(ctx context.Context, client *mysql.Client, username string) {
	hasRole, err := client.HasTaskUserRole(ctx, username)
	if err != nil {
		return // summary is informational only
	}

	fmt.Println()
	fmt.Println(labelStyle.Render("  permission summary:"))

	roleStatus := errorStyle.Render("missing")
	if hasRole {
		roleStatus = successStyle.Render("granted")
	}
	fmt.Printf("    %s %s\n", dimStyle.Render("mysql_task_user role:"), roleStatus)
	fmt.Printf("    %s %s\n", dimStyle.Render("vector store privileges:"), successStyle.Render("granted"))
	fmt.Println()
}

func init() {
	genaiSetupCmd.Flags().StringVar(&genaiInputSchema, "input-schema", "", "Input schema name (defaults to the main schema)")
	genaiSetupCmd.Flags().StringVar(&genaiOutputSchema, "output-schema", "", "Output schema name (defaults to the main schema)")
	genaiSetupCmd.Flags().BoolVar(&genaiShowOnly, "show-only", false, "Only show SQL statements without executing")
	genaiCmd.AddCommand(genaiSetupCmd)
}
