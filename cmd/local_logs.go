package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/docker/docker/pkg/stdcopy"
	"github.com/spf13/cobra"
)

var followLogs bool

var localLogsCmd = &cobra.Command{
	Use:   "logs [name]",
	Short: "Stream logs from a local instance",
	Long:  "Stream MySQL server logs from a local instance's container",
	Args:  cobra.ExactArgs(1),
	Run:   runLocalLogs,
}

func runLocalLogs(cmd *cobra.Command, args []string) {
	name := args[0]

	registry := mustLocalRegistry()

	instance, err := registry.Get(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}

	dockerClient := mustDockerClient()
	defer dockerClient.Close()

	logs, err := dockerClient.GetContainerLogs(instance.ContainerID, followLogs)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] failed to get logs: %v", err)))
		os.Exit(1)
	}
	defer logs.Close()

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> logs: %s", name)))
	fmt.Println()

	stdoutPipe, stdoutWriter := io.Pipe()
	stderrPipe, stderrWriter := io.Pipe()

	go func() {
		defer stdoutWriter.Close()
		defer stderrWriter.Close()
		_, err := stdcopy.StdCopy(stdoutWriter, stderrWriter, logs)
		if err != nil && err != io.EOF {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] error demultiplexing logs: %v", err)))
		}
	}()

	go func() {
		scanner := bufio.NewScanner(stdoutPipe)
		for scanner.Scan() {
			fmt.Println(scanner.Text())
		}
	}()

	scanner := bufio.NewScanner(stderrPipe)
	for scanner.Scan() {
		fmt.Println(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] error reading logs: %v", err)))
		os.Exit(1)
	}
}

func init() {
	localLogsCmd.Flags().BoolVarP(&followLogs, "follow", "f", false, "Follow log output")
	localCmd.AddCommand(localLogsCmd)
}
