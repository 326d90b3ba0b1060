package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/local"
	"github.com/spf13/cobra"
)

var (
	downKeepVolume bool
	downForce      bool
)

var localDownCmd = &cobra.Command{
	Use:   "down [name]",
	Short: "Stop and remove a local MySQL instance",
	Long:  "Stop the container and remove it together with its data volume",
	Args:  cobra.ExactArgs(1),
	Run:   runLocalDown,
}

func runLocalDown(cmd *cobra.Command, args []string) {
	name := args[0]

	registry := mustLocalRegistry()

	if _, err := registry.Get(name); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	if !downForce && !downKeepVolume {
		fmt.Println(errorStyle.Render(fmt.Sprintf("WARNING: this will delete all data of instance '%s'", name)))

		reader := bufio.NewReader(os.Stdin)
		confirmed, err := promptYesNo(reader, fmt.Sprintf("remove instance '%s' and its data? (y/N): ", name), false)
		if err != nil || !confirmed {
			fmt.Println(dimStyle.Render("  operation cancelled"))
			os.Exit(1)
		}
	}

	dockerClient := mustDockerClient()
	defer dockerClient.Close()

	fmt.Println(progressStyle.Render(fmt.Sprintf("  --> removing instance '%s'", name)))

	provisioner := local.NewProvisioner(dockerClient, registry)
	if err := provisioner.Destroy(name, downKeepVolume); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] local instance '%s' removed", name)))
	if downKeepVolume {
		fmt.Println(dimStyle.Render("  data volume kept"))
	}
}

func init() {
	localDownCmd.Flags().BoolVar(&downKeepVolume, "keep-volume", false, "Keep the data volume")
	localDownCmd.Flags().BoolVarP(&downForce, "force", "f", false, "Skip confirmation prompt")
	localCmd.AddCommand(localDownCmd)
}
