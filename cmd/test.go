package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/config"
	"github.com/heatwave-cli/heatwaved/internal/mysql"
	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/spf13/cobra"
)

var (
	testOCIOnly bool
	testDBOnly  bool
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test HeatWave and OCI connections",
	Long:  "Verify the stored database credentials against the DB system and the OCI credentials against the identity service",
	Run:   runTest,
}

func runTest(cmd *cobra.Command, args []string) {
	store := mustStore()

	testDB, testOCI := testTargets(testDBOnly, testOCIOnly)

	if testDB {
		runDatabaseTest(store)
	}
	if testOCI {
		runOCITest(store)
	}
}

// testTargets treats --db and --oci as additive restrictions; both flags
// or neither selects both sides.
func testTargets(dbOnly, ociOnly bool) (runDB, runOCI bool) {
	if dbOnly == ociOnly {
		return true, true
	}
	return dbOnly, ociOnly
}

func runDatabaseTest(store *config.Manager) {
	fmt.Println(titleStyle.Render("==> testing database connection"))
	fmt.Println()

	dbConfig, err := store.LoadDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load database configuration: %v", err)))
		os.Exit(1)
	}
	if dbConfig == nil {
		fmt.Println(warnStyle.Render("  [warn] database configuration not found"))
		return
	}

	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> connecting to %s:%s", dbConfig.Host, dbConfig.Port)))

	ctx := context.Background()
	client, err := mysql.Connect(ctx, dbConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] database connection failed: %v", err)))
		return
	}
	defer client.Close()

	version, err := client.Version(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] %v", err)))
		return
	}

	fmt.Println(successStyle.Render("  [done] connected to MySQL"))
	fmt.Printf("    %s %s\n", dimStyle.Render("mysql version:"), valueStyle.Render(version))

	vars, err := client.HeatWaveVariables(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] %v", err)))
		return
	}

	if len(vars) == 0 {
		fmt.Println(warnStyle.Render("  [warn] HeatWave variables not found"))
		return
	}

	fmt.Println(successStyle.Render("  [done] HeatWave is available"))
	for i, v := range vars {
		if i >= 3 {
			break
		}
		fmt.Printf("    %s %s\n", dimStyle.Render(v.Name+":"), valueStyle.Render(v.Value))
	}
	fmt.Println()
}

func runOCITest(store *config.Manager) {
	fmt.Println(titleStyle.Render("==> testing oci authentication"))
	fmt.Println()

	ociConfig, err := store.LoadOCI()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to load OCI configuration: %v", err)))
		os.Exit(1)
	}
	if ociConfig == nil || !ociConfig.Configured {
		fmt.Println(warnStyle.Render("  [warn] OCI configuration not found"))
		fmt.Println(dimStyle.Render("  run 'heatwaved init --oci' to configure"))
		return
	}

	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> loading OCI config from %s", ociConfig.ConfigPath)))

	client, err := oci.NewClient(ociConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] %v", err)))
		return
	}

	if err := client.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] invalid OCI config: %v", err)))
		return
	}
	fmt.Println(successStyle.Render("  [done] OCI configuration is valid"))

	ctx := context.Background()
	principal, err := client.WhoAmI(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] OCI API call failed: %s", oci.ServiceMessage(err))))
		return
	}

	fmt.Println(successStyle.Render("  [done] OCI authentication successful"))
	fmt.Printf("    %s %s\n", dimStyle.Render("user:"), valueStyle.Render(principal.UserName))
	fmt.Printf("    %s %s\n", dimStyle.Render("ocid:"), valueStyle.Render(principal.UserOCID))
	fmt.Printf("    %s %s\n", dimStyle.Render("tenancy:"), valueStyle.Render(principal.TenancyName))
	fmt.Printf("    %s %s\n", dimStyle.Render("region:"), valueStyle.Render(principal.Region))

	compartments, err := client.ListCompartments(ctx, 5)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("  [error] OCI API call failed: %s", oci.ServiceMessage(err))))
		return
	}

	if len(compartments) > 0 {
		fmt.Println()
		fmt.Println(successStyle.Render("  [done] compartments accessible:"))
		for i, compartment := range compartments {
			if i >= 3 {
				fmt.Printf("    %s\n", dimStyle.Render(fmt.Sprintf("... and %d more", len(compartments)-3)))
				break
			}
			fmt.Printf("    %s\n", dimStyle.Render("- "+compartment.Name))
		}
	}
	fmt.Println()
}

func init() {
	testCmd.Flags().BoolVar(&testOCIOnly, "oci", false, "Test only OCI authentication")
	testCmd.Flags().BoolVar(&testDBOnly, "db", false, "Test only database connection")
	rootCmd.AddCommand(testCmd)
}
