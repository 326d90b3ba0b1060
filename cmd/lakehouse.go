package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/spf13/cobra"
)

var lakehouseCmd = &cobra.Command{
	Use:   "lakehouse",
	Short: "Manage HeatWave Lakehouse access",
	Long:  "Set up the OCI policies Lakehouse needs to read Object Storage",
}

// selectCompartment resolves --compartment-id when given, otherwise lists
// accessible compartments and lets the user pick one.
func selectCompartment(ctx context.Context, client *oci.Client, compartmentID string) (*oci.Compartment, error) {
	if compartmentID != "" {
		return client.GetCompartment(ctx, compartmentID)
	}

	compartments, err := client.AccessibleCompartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list compartments: %s", oci.ServiceMessage(err))
	}
	if len(compartments) == 0 {
		return nil, fmt.Errorf("no accessible compartments found")
	}

	fmt.Println(labelStyle.Render("  available compartments:"))
	for i, compartment := range compartments {
		fmt.Printf("    %s %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			valueStyle.Render(compartment.Name))
	}
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	index, err := promptSelection(reader,
		fmt.Sprintf("  select a compartment [1-%d] (1): ", len(compartments)),
		len(compartments), "1")
	if err != nil {
		return nil, err
	}

	return &compartments[index], nil
}

func init() {
	rootCmd.AddCommand(lakehouseCmd)
}
