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
	batchModel     string
	batchLanguage  string
	batchDatabase  string
	batchShowQuery bool
)

var generateBatchCmd = &cobra.Command{
	Use:   "batch [input Table.Column] [output Table.Column]",
	Short: "Generate text for every row of a table column",
	Long: `Run sys.ML_GENERATE_TABLE over an input column, writing results to the
output column's table (created if needed). Specs may be Table.Column or
Database.Table.Column; unqualified names use --database or the default
schema.`,
	Args: cobra.ExactArgs(2),
	Run:  runGenerateBatch,
}

func runGenerateBatch(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)
	defaults := projectDefaults()

	database := batchDatabase
	if database == "" {
		database = dbConfig.Database
	}

	inputSpec, err := mysql.QualifyTableSpec(args[0], database)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		fmt.Println(dimStyle.Render("  use --database or set a default with 'heatwaved schema use'"))
		os.Exit(1)
	}

	outputSpec, err := mysql.QualifyTableSpec(args[1], database)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		fmt.Println(dimStyle.Render("  use --database or set a default with 'heatwaved schema use'"))
		os.Exit(1)
	}

	language := batchLanguage
	if language == "" {
		language = defaults.Generate.Language
	}

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	model := resolveModel(ctx, client, batchModel, defaults.Generate.Model)

	fmt.Println(titleStyle.Render("==> heatwave batch generate"))
	fmt.Printf("    %s %s\n", dimStyle.Render("input:"), valueStyle.Render(inputSpec))
	fmt.Printf("    %s %s\n", dimStyle.Render("output:"), valueStyle.Render(outputSpec))
	fmt.Printf("    %s %s\n", dimStyle.Render("model:"), valueStyle.Render(model))
	fmt.Printf("    %s %s\n", dimStyle.Render("language:"), valueStyle.Render(language))
	fmt.Println()

	if batchShowQuery {
		fmt.Printf("    %s\n", dimStyle.Render(mysql.GenerateTableStatement(inputSpec, outputSpec, model, language)))
		fmt.Println()
	}

	fmt.Println(progressStyle.Render("  --> running batch generation, this may take a while"))

	if err := client.GenerateTable(ctx, inputSpec, outputSpec, model, language); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] results written to %s", outputSpec)))

	outputTable, err := mysql.TableFromSpec(outputSpec)
	if err != nil {
		return
	}

	if count, err := client.CountRows(ctx, outputTable); err == nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  generated %d response(s)", count)))
	}

	reader := bufio.NewReader(os.Stdin)
	showSample, err := promptYesNo(reader, "  show sample results? (Y/n): ", true)
	if err == nil && showSample {
		showBatchSample(ctx, client, outputTable)
	}
}

func showBatchSample(ctx context.Context, client *mysql.Client, table string) {
	columns, rows, err := client.SampleRows(ctx, table, 3)
	if err != nil || len(rows) == 0 {
		return
	}

	fmt.Println()
	for i, row := range rows {
		fmt.Println(labelStyle.Render(fmt.Sprintf("  result %d:", i+1)))
		for j, value := range row {
			text := mysql.ParseGeneratedText(value)
			if len(text) > 200 {
				text = text[:200] + "..."
			}
			fmt.Printf("    %s %s\n", dimStyle.Render(columns[j]+":"), valueStyle.Render(text))
		}
		fmt.Println()
	}
}

func init() {
	generateBatchCmd.Flags().StringVarP(&batchModel, "model", "m", "", "Model to use for generation")
	generateBatchCmd.Flags().StringVarP(&batchLanguage, "lang", "l", "", "Language code (e.g. en, ko, fr)")
	generateBatchCmd.Flags().StringVarP(&batchDatabase, "database", "d", "", "Database for unqualified table specs")
	generateBatchCmd.Flags().BoolVar(&batchShowQuery, "show-query", false, "Show the SQL statement being executed")
	generateCmd.AddCommand(generateBatchCmd)
}
