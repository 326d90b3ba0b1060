package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/heatwave-cli/heatwaved/internal/config"
	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/heatwave-cli/heatwaved/internal/project"
	"github.com/heatwave-cli/heatwaved/pkg/models"
	"github.com/spf13/cobra"
)

var initOCI bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize HeatWave configuration",
	Long:  "Interactive wizard that stores HeatWave DB credentials (and optionally OCI credentials) under .heatwaved/ in the current directory",
	Run:   runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	store, err := config.NewManager()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if initOCI {
		if !store.IsInitialized() {
			fmt.Fprintln(os.Stderr, errorStyle.Render("[error] HeatWave configuration not found"))
			fmt.Println(dimStyle.Render("  run 'heatwaved init' first to set up database configuration"))
			os.Exit(1)
		}
		runOCISetup(store)
		return
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println(titleStyle.Render("==> heatwave cli configuration"))
	fmt.Println()

	if _, err := os.Stat(store.Dir); err == nil {
		overwrite, err := promptYesNo(reader, "configuration already exists, overwrite? (y/N): ", false)
		if err != nil || !overwrite {
			fmt.Println(dimStyle.Render("  configuration cancelled"))
			os.Exit(1)
		}
	}

	if err := store.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println(progressStyle.Render("  --> database configuration"))
	fmt.Println()

	host, err := promptRequired(reader, "  db host: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	port, err := promptOptional(reader, "  db port [3306]: ", "3306")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	username, err := promptRequired(reader, "  username: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	password, err := promptPassword(reader, "  password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	dbConfig := &models.DatabaseConfig{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
	}

	if err := store.SaveDatabase(dbConfig); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to save configuration: %v", err)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(successStyle.Render("  [done] database configuration saved"))

	writeStarter, err := promptYesNo(reader, "  write a starter heatwave.toml with project defaults? (y/N): ", false)
	if err == nil && writeStarter {
		if _, err := os.Stat(project.ConfigFileName); err == nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("  [warn] %s already exists, leaving it alone", project.ConfigFileName)))
		} else if err := os.WriteFile(project.ConfigFileName, []byte(project.StarterConfig()), 0644); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to write %s: %v", project.ConfigFileName, err)))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("  [done] %s created", project.ConfigFileName)))
		}
	}

	fmt.Println()
	fmt.Println(successStyle.Render("  [done] heatwave cli initialized"))
	fmt.Println(dimStyle.Render("  configuration saved to .heatwaved/"))
	fmt.Println(dimStyle.Render("  run 'heatwaved init --oci' to add OCI credentials for Lakehouse"))
	fmt.Println()
}

func runOCISetup(store *config.Manager) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println(titleStyle.Render("==> oci configuration"))
	fmt.Println()
	fmt.Println(labelStyle.Render("  to generate API keys, visit:"))
	fmt.Println(dimStyle.Render("  https://cloud.oracle.com/identity/domains/my-profile/auth-tokens"))
	fmt.Println(dimStyle.Render("  -> API keys -> Add API key"))
	fmt.Println()
	fmt.Println(dimStyle.Render("  paste your OCI configuration below (press Enter twice when done):"))
	fmt.Println()

	lines, err := readMultiline(reader)
	if err != nil || len(lines) == 0 {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[error] no configuration provided"))
		os.Exit(1)
	}

	rawConfig := strings.Join(lines, "\n")
	parsed := oci.ParseConfigText(lines)

	if keyFile, ok := parsed["key_file"]; ok {
		rawConfig = resolveKeyFile(store, reader, rawConfig, keyFile)
	}

	if err := store.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if err := store.SaveOCI(rawConfig, "DEFAULT"); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to save OCI configuration: %v", err)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(successStyle.Render("  [done] OCI configuration saved"))
	fmt.Println()
	fmt.Println(progressStyle.Render("  --> testing OCI authentication"))

	if testOCIAuth(store) {
		fmt.Println()
		fmt.Println(successStyle.Render("  [done] OCI configuration added and verified"))
	} else {
		fmt.Println()
		fmt.Println(warnStyle.Render("  [warn] OCI configuration saved but the authentication test failed"))
		fmt.Println(dimStyle.Render("  check your configuration and run 'heatwaved test --oci'"))
	}
	fmt.Println()
}

// resolveKeyFile copies the private key into .heatwaved/.oci/ when the
// pasted config points at a real file, and rewrites the key_file value.
func resolveKeyFile(store *config.Manager, reader *bufio.Reader, rawConfig, keyFileValue string) string {
	if !oci.IsPlaceholderKeyPath(keyFileValue) {
		return rawConfig
	}

	fmt.Println()
	fmt.Println(progressStyle.Render("  --> private key file configuration"))

	keyPath, err := promptOptional(reader, "  path to your private key file: ", "")
	if err != nil || keyPath == "" {
		fmt.Println(warnStyle.Render("  [warn] private key file not set, update key_file manually"))
		return rawConfig
	}

	src, err := os.Open(keyPath)
	if err != nil {
		fmt.Println(warnStyle.Render("  [warn] private key file not found, update key_file manually"))
		return rawConfig
	}
	defer src.Close()

	if err := store.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	destPath := filepath.Join(store.OCIDir, filepath.Base(keyPath))
	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to copy private key: %v", err)))
		return rawConfig
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to copy private key: %v", err)))
		return rawConfig
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] private key copied to %s", destPath)))
	return oci.ReplaceConfigValue(rawConfig, "key_file", destPath)
}

func testOCIAuth(store *config.Manager) bool {
	ociConfig, err := store.LoadOCI()
	if err != nil || ociConfig == nil || !ociConfig.Configured {
		return false
	}

	client, err := oci.NewClient(ociConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		return false
	}

	if err := client.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] invalid OCI config: %v", err)))
		return false
	}

	principal, err := client.WhoAmI(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] authentication failed: %s", oci.ServiceMessage(err))))
		return false
	}

	fmt.Printf("    %s %s\n", dimStyle.Render("authenticated as:"), valueStyle.Render(principal.UserName))
	fmt.Printf("    %s %s\n", dimStyle.Render("tenancy:"), valueStyle.Render(principal.TenancyName))
	fmt.Printf("    %s %s\n", dimStyle.Render("region:"), valueStyle.Render(principal.Region))
	return true
}

func init() {
	initCmd.Flags().BoolVar(&initOCI, "oci", false, "Configure OCI authentication for Lakehouse")
	rootCmd.AddCommand(initCmd)
}
