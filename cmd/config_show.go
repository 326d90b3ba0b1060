package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/heatwave-cli/heatwaved/internal/utils"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current HeatWave configuration",
	Long:  "Display the stored database and OCI configuration with secrets masked",
	Run:   runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) {
	store := mustStore()

	fmt.Println(titleStyle.Render("==> heatwave configuration"))
	fmt.Println()

	dbConfig, err := store.LoadDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load database configuration: %v", err)))
		os.Exit(1)
	}

	if dbConfig != nil {
		fmt.Println(labelStyle.Render("  database configuration:"))
		fmt.Printf("    %s %s\n", dimStyle.Render("host:"), valueStyle.Render(orNotSet(dbConfig.Host)))
		fmt.Printf("    %s %s\n", dimStyle.Render("port:"), valueStyle.Render(orNotSet(dbConfig.Port)))
		fmt.Printf("    %s %s\n", dimStyle.Render("username:"), valueStyle.Render(orNotSet(dbConfig.Username)))
		fmt.Printf("    %s %s\n", dimStyle.Render("password:"), valueStyle.Render(orNotSet(utils.MaskPassword(dbConfig.Password))))
		if dbConfig.Database != "" {
			fmt.Printf("    %s %s\n", dimStyle.Render("default schema:"), valueStyle.Render(dbConfig.Database))
		}
	} else {
		fmt.Println(warnStyle.Render("  [warn] no database configuration found"))
	}
	fmt.Println()

	ociConfig, err := store.LoadOCI()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load OCI configuration: %v", err)))
		os.Exit(1)
	}

	if ociConfig != nil && ociConfig.Configured {
		fmt.Println(labelStyle.Render("  oci configuration:"))
		fmt.Printf("    %s %s\n", dimStyle.Render("config path:"), valueStyle.Render(ociConfig.ConfigPath))
		fmt.Printf("    %s %s\n", dimStyle.Render("profile:"), valueStyle.Render(orNotSet(ociConfig.Profile)))

		printOCIConfigFile(ociConfig.ConfigPath)
	} else {
		fmt.Println(warnStyle.Render("  [warn] no OCI configuration found"))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  configuration directory: %s", store.Dir)))
}

// printOCIConfigFile shows the config file with sensitive values masked.
func printOCIConfigFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  oci config file (%s):", path)))

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			fmt.Printf("    %s\n", dimStyle.Render(trimmed))
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "key_file":
			fmt.Printf("    %s\n", dimStyle.Render(key+"=<path_hidden>"))
		case "fingerprint", "user", "tenancy":
			fmt.Printf("    %s\n", dimStyle.Render(key+"="+utils.MaskValue(value)))
		default:
			fmt.Printf("    %s\n", dimStyle.Render(trimmed))
		}
	}
}

func orNotSet(value string) string {
	if value == "" {
		return "not set"
	}
	return value
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
