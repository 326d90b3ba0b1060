package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate text with HeatWave GenAI",
	Long:  "Run HeatWave GenAI text generation against the configured DB system",
}

// resolveModel returns the model from the flag or heatwave.toml, falling
// back to an interactive selection against the instance's model list.
func resolveModel(ctx context.Context, client *mysql.Client, flagValue, projectValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if projectValue != "" {
		return projectValue
	}

	model, err := selectGenerationModel(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}
	return model
}

func selectGenerationModel(ctx context.Context, client *mysql.Client) (string, error) {
	models, haveLoadInfo, err := client.ListGenerationModels(ctx)
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no generation models available on this instance")
	}

	fmt.Println(labelStyle.Render("  available generation models:"))
	for i, model := range models {
		status := ""
		if haveLoadInfo {
			if model.Loaded {
				status = successStyle.Render(" (loaded)")
			} else {
				status = warnStyle.Render(" (not loaded)")
			}
		}
		fmt.Printf("    %s %s%s %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			valueStyle.Render(model.Name),
			status,
			dimStyle.Render("("+model.Provider()+")"))
	}
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		index, err := promptSelection(reader,
			fmt.Sprintf("  select a model [1-%d] (1): ", len(models)),
			len(models), "1")
		if err != nil {
			return "", err
		}

		chosen := models[index]
		if haveLoadInfo && !chosen.Loaded {
			fmt.Println(warnStyle.Render(fmt.Sprintf("  [warn] model '%s' is not loaded; it may need loading first", chosen.Name)))
			confirmed, err := promptYesNo(reader, "  continue anyway? (y/N): ", false)
			if err != nil {
				return "", err
			}
			if !confirmed {
				continue
			}
		}

		return chosen.Name, nil
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
