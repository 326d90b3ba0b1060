package cmd

import (
	"fmt"
	"os"

	"github.com/heatwave-cli/heatwaved/internal/local"
	"github.com/heatwave-cli/heatwaved/internal/utils"
	"github.com/spf13/cobra"
)

var (
	localImage    string
	localPort     int
	localPassword string
)

var localUpCmd = &cobra.Command{
	Use:   "up [name]",
	Short: "Start a local MySQL instance",
	Long: `Pull the MySQL image, create a data volume and start a container
published on 127.0.0.1. A random root password is generated unless
--password is given.`,
	Args: cobra.ExactArgs(1),
	Run:  runLocalUp,
}

func runLocalUp(cmd *cobra.Command, args []string) {
	name := args[0]

	if !utils.IsValidInstanceName(name) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] invalid instance name '%s'", name)))
		fmt.Println(dimStyle.Render("  use lowercase letters, digits and dashes"))
		os.Exit(1)
	}

	defaults := projectDefaults()

	image := localImage
	if image == "" {
		image = defaults.Local.Image
	}
	port := localPort
	if port == 0 {
		port = defaults.Local.Port
	}
	password := localPassword
	if password == "" {
		password = defaults.Local.Password
	}

	registry := mustLocalRegistry()
	dockerClient := mustDockerClient()
	defer dockerClient.Close()

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> starting local instance: %s", name)))
	fmt.Printf("    %s %s\n", dimStyle.Render("image:"), valueStyle.Render(image))
	fmt.Printf("    %s %s\n", dimStyle.Render("port:"), valueStyle.Render(fmt.Sprintf("127.0.0.1:%d", port)))
	fmt.Println()
	fmt.Println(progressStyle.Render("  --> pulling image and creating container"))

	provisioner := local.NewProvisioner(dockerClient, registry)

	instance, err := provisioner.Provision(name, image, password, port)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("  [done] local instance '%s' is running", instance.Name)))
	fmt.Println()
	fmt.Printf("    %s %s\n", dimStyle.Render("host:"), valueStyle.Render("127.0.0.1"))
	fmt.Printf("    %s %s\n", dimStyle.Render("port:"), valueStyle.Render(fmt.Sprintf("%d", instance.Port)))
	fmt.Printf("    %s %s\n", dimStyle.Render("username:"), valueStyle.Render(instance.Username))
	fmt.Printf("    %s %s\n", dimStyle.Render("password:"), valueStyle.Render(instance.Password))
	fmt.Println()
	fmt.Println(dimStyle.Render("  point 'heatwaved init' at this instance to use it"))
}

func init() {
	localUpCmd.Flags().StringVar(&localImage, "image", "", "MySQL image to run")
	localUpCmd.Flags().IntVar(&localPort, "port", 0, "Host port to publish on 127.0.0.1")
	localUpCmd.Flags().StringVar(&localPassword, "password", "", "Root password (random when omitted)")
	localCmd.AddCommand(localUpCmd)
}
