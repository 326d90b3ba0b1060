package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available generation models",
	Long:  "List the LLMs the HeatWave instance supports for text generation",
	Run:   runGenerateModels,
}

func runGenerateModels(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	fmt.Println(titleStyle.Render("==> available generation models"))
	fmt.Println()

	models, haveLoadInfo, err := client.ListGenerationModels(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if len(models) == 0 {
		fmt.Println(warnStyle.Render("  [warn] no generation models reported by this instance"))
		return
	}

	for _, model := range models {
		status := ""
		if haveLoadInfo {
			if model.Loaded {
				status = successStyle.Render(" [loaded]")
			} else {
				status = dimStyle.Render(" [not loaded]")
			}
		}
		fmt.Printf("    %s%s %s\n",
			valueStyle.Render(model.Name),
			status,
			dimStyle.Render(fmt.Sprintf("(%s)", model.Provider())))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  %d model(s) available", len(models))))
	if !haveLoadInfo {
		fmt.Println(dimStyle.Render("  load status not available on this HeatWave version"))
	}
}

func init() {
	generateCmd.AddCommand(generateModelsCmd)
}
