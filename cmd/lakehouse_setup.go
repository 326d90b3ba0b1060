package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/spf13/cobra"
)

var (
	lakehouseCompartmentID string
	lakehouseGroupName     string
	lakehousePolicyName    string
	lakehouseShowOnly      bool
)

var lakehouseSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up Lakehouse Object Storage access",
	Long: `Create the dynamic group and policy that let HeatWave DB systems in a
compartment read Object Storage buckets and objects.`,
	Run: runLakehouseSetup,
}

func runLakehouseSetup(cmd *cobra.Command, args []string) {
	store := mustStore()
	client := mustOCIClient(store)
	defaults := projectDefaults()

	groupName := lakehouseGroupName
	if groupName == "" {
		groupName = defaults.Lakehouse.DynamicGroup
	}
	policyName := lakehousePolicyName
	if policyName == "" {
		policyName = defaults.Lakehouse.Policy
	}

	fmt.Println(titleStyle.Render("==> heatwave lakehouse setup"))
	fmt.Println()

	ctx := context.Background()

	compartment, err := selectCompartment(ctx, client, lakehouseCompartmentID)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	identityDomain := client.ActiveIdentityDomain(ctx)

	matchingRule := oci.MatchingRule(compartment.ID)
	statements := oci.PolicyStatements(groupName, identityDomain, compartment.ID)

	fmt.Println()
	fmt.Printf("    %s %s\n", dimStyle.Render("compartment:"), valueStyle.Render(compartment.Name))
	fmt.Printf("    %s %s\n", dimStyle.Render("dynamic group:"), valueStyle.Render(groupName))
	fmt.Printf("    %s %s\n", dimStyle.Render("policy:"), valueStyle.Render(policyName))
	if identityDomain != "" {
		fmt.Printf("    %s %s\n", dimStyle.Render("identity domain:"), valueStyle.Render(identityDomain))
	}
	fmt.Println()

	fmt.Println(labelStyle.Render("  matching rule:"))
	fmt.Printf("    %s\n", valueStyle.Render(matchingRule))
	fmt.Println()
	fmt.Println(labelStyle.Render("  policy statements:"))
	for _, stmt := range statements {
		fmt.Printf("    %s\n", valueStyle.Render(stmt))
	}
	fmt.Println()

	if lakehouseShowOnly {
		fmt.Println(warnStyle.Render("  [warn] --show-only set, nothing created"))
		return
	}

	reader := bufio.NewReader(os.Stdin)
	confirmed, err := promptYesNo(reader, "  create these resources? (Y/n): ", true)
	if err != nil || !confirmed {
		fmt.Println(dimStyle.Render("  operation cancelled"))
		return
	}

	fmt.Println()
	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> creating dynamic group '%s'", groupName)))

	groupID, existed, err := client.CreateDynamicGroup(ctx, groupName, matchingRule,
		"Dynamic group for HeatWave Lakehouse Object Storage access, created by heatwaved")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to create dynamic group: %s", oci.ServiceMessage(err))))
		os.Exit(1)
	}
	if existed {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  [warn] dynamic group '%s' already exists, reusing it", groupName)))
	} else {
		fmt.Println(successStyle.Render(fmt.Sprintf("  [done] dynamic group created: %s", groupID)))
	}

	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> creating policy '%s'", policyName)))

	policyID, existed, err := client.CreatePolicy(ctx, compartment.ID, policyName, statements,
		"Policy for HeatWave Lakehouse Object Storage access, created by heatwaved")
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to create policy: %s", oci.ServiceMessage(err))))
		os.Exit(1)
	}
	if existed {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  [warn] policy '%s' already exists, reusing it", policyName)))
	} else {
		fmt.Println(successStyle.Render(fmt.Sprintf("  [done] policy created: %s", policyID)))
	}

	fmt.Println()
	fmt.Println(successStyle.Render("  [done] Lakehouse setup completed"))
	fmt.Println(dimStyle.Render("  DB systems in this compartment can now read Object Storage"))
}

func init() {
	lakehouseSetupCmd.Flags().StringVar(&lakehouseCompartmentID, "compartment-id", "", "Compartment OCID (interactive selection when omitted)")
	lakehouseSetupCmd.Flags().StringVar(&lakehouseGroupName, "dynamic-group", "", "Dynamic group name")
	lakehouseSetupCmd.Flags().StringVar(&lakehousePolicyName, "policy", "", "Policy name")
	lakehouseSetupCmd.Flags().BoolVar(&lakehouseShowOnly, "show-only", false, "Only show what would be created")
	lakehouseCmd.AddCommand(lakehouseSetupCmd)
}
