package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/spf13/cobra"
)

var (
	textModel       string
	textLanguage    string
	textInteractive bool
	textShowQuery   bool
	textRaw         bool
)

// defaultTextPrompt is used when no query argument is given outside
// interactive mode.
const defaultTextPrompt = "Write an article on Artificial intelligence in 200 words."

var generateTextCmd = &cobra.Command{
	Use:   "text [query]",
	Short: "Generate text from a prompt",
	Long: `Run sys.ML_GENERATE for a single prompt and print the result. With
--interactive, keep prompting until 'exit' or 'quit'. When no model is
given via --model or heatwave.toml, lists the instance's generation
models and asks for a selection.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerateText,
}

func runGenerateText(cmd *cobra.Command, args []string) {
	store := mustStore()
	dbConfig := mustDatabaseConfig(store)
	defaults := projectDefaults()

	language := textLanguage
	if language == "" {
		language = defaults.Generate.Language
	}

	ctx := context.Background()
	client := mustConnect(ctx, dbConfig)
	defer client.Close()

	model := resolveModel(ctx, client, textModel, defaults.Generate.Model)

	fmt.Println(titleStyle.Render("==> heatwave generate"))
	fmt.Printf("    %s %s\n", dimStyle.Render("model:"), valueStyle.Render(model))
	fmt.Printf("    %s %s\n", dimStyle.Render("language:"), valueStyle.Render(language))
	fmt.Println()

	if textInteractive {
		runGenerateSession(ctx, client, model, language)
		return
	}

	prompt := defaultTextPrompt
	if len(args) > 0 {
		prompt = args[0]
	}

	if err := generateOnce(ctx, client, prompt, model, language); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		fmt.Println(dimStyle.Render("  check the model name with 'heatwaved generate models'"))
		os.Exit(1)
	}
}

// runGenerateSession loops prompts until the user types exit or quit.
func runGenerateSession(ctx context.Context, client *mysql.Client, model, language string) {
	fmt.Println(subtitleStyle.Render("  interactive mode, type 'exit' or 'quit' to end the session"))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Print(labelStyle.Render("  query: "))

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		prompt := strings.TrimSpace(line)
		if prompt == "" {
			continue
		}
		if lower := strings.ToLower(prompt); lower == "exit" || lower == "quit" {
			return
		}

		if err := generateOnce(ctx, client, prompt, model, language); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] %v", err)))
		}
	}
}

func generateOnce(ctx context.Context, client *mysql.Client, prompt, model, language string) error {
	if textShowQuery {
		fmt.Println(dimStyle.Render("  " + mysql.GenerateStatement(model, language)))
	}
	fmt.Println(progressStyle.Render("  --> generating, this may take a moment"))
	fmt.Println()

	result, err := client.Generate(ctx, prompt, model, language)
	if err != nil {
		return err
	}
	if result == "" {
		fmt.Println(warnStyle.Render("  [warn] the model returned an empty result"))
		return nil
	}

	if textRaw {
		fmt.Println(result)
		return nil
	}

	fmt.Println(valueStyle.Render(mysql.ParseGeneratedText(result)))
	return nil
}

func init() {
	generateTextCmd.Flags().StringVarP(&textModel, "model", "m", "", "Model to use for generation")
	generateTextCmd.Flags().StringVarP(&textLanguage, "lang", "l", "", "Language code (e.g. en, ko, fr)")
	generateTextCmd.Flags().BoolVarP(&textInteractive, "interactive", "i", false, "Interactive mode")
	generateTextCmd.Flags().BoolVar(&textShowQuery, "show-query", false, "Show the SQL statement being executed")
	generateTextCmd.Flags().BoolVar(&textRaw, "raw", false, "Print the raw JSON result")
	generateCmd.AddCommand(generateTextCmd)
}
