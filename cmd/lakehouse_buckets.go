package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/oci"
	"github.com/spf13/cobra"
)

var bucketsCompartmentID string

var lakehouseBucketsCmd = &cobra.Command{
	Use:   "list-buckets",
	Short: "List Object Storage buckets",
	Long:  "List the Object Storage buckets Lakehouse could load data from",
	Run:   runLakehouseBuckets,
}

func runLakehouseBuckets(cmd *cobra.Command, args []string) {
	store := mustStore()
	client := mustOCIClient(store)

	fmt.Println(titleStyle.Render("==> object storage buckets"))
	fmt.Println()

	ctx := context.Background()

	compartment, err := selectCompartment(ctx, client, bucketsCompartmentID)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	buckets, err := client.ListBuckets(ctx, compartment.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to list buckets: %s", oci.ServiceMessage(err))))
		os.Exit(1)
	}

	fmt.Println()
	if len(buckets) == 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  no buckets in compartment '%s'", compartment.Name)))
		return
	}

	for _, bucket := range buckets {
		fmt.Printf("    %s %s\n",
			valueStyle.Render(bucket.Name),
			dimStyle.Render(fmt.Sprintf("(created %s)", bucket.Created.Format("2006-01-02"))))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  %d bucket(s) in compartment '%s'", len(buckets), compartment.Name)))
}

func init() {
	lakehouseBucketsCmd.Flags().StringVar(&bucketsCompartmentID, "compartment-id", "", "Compartment OCID (interactive selection when omitted)")
	lakehouseCmd.AddCommand(lakehouseBucketsCmd)
}
