package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var localStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show local MySQL instances",
	Long:  "List registered local instances and their container state",
	Run:   runLocalStatus,
}

func runLocalStatus(cmd *cobra.Command, args []string) {
	registry := mustLocalRegistry()

	instances, err := registry.List()
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		return
	}

	fmt.Println(titleStyle.Render("==> local instances"))
	fmt.Println()

	if len(instances) == 0 {
		fmt.Println(dimStyle.Render("  no local instances"))
		fmt.Println(dimStyle.Render("  start one with 'heatwaved local up <name>'"))
		return
	}

	dockerClient := mustDockerClient()
	defer dockerClient.Close()

	for _, instance := range instances {
		status, err := dockerClient.GetContainerStatus(instance.ContainerID)
		if err != nil {
			status = "unknown"
		}

		statusText := dimStyle.Render(status)
		if status == "running" {
			statusText = successStyle.Render(status)
		}

		fmt.Printf("    %s %s\n", valueStyle.Render(instance.Name), statusText)
		fmt.Printf("      %s %s\n", dimStyle.Render("image:"), valueStyle.Render(instance.Image))
		fmt.Printf("      %s %s\n", dimStyle.Render("port:"), valueStyle.Render(fmt.Sprintf("127.0.0.1:%d", instance.Port)))
		fmt.Printf("      %s %s\n", dimStyle.Render("created:"), valueStyle.Render(instance.CreatedAt.Format("2006-01-02 15:04:05")))
		fmt.Println()
	}
}

func init() {
	localCmd.AddCommand(localStatusCmd)
}
