package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "heatwaved",
	Short: "CLI for Oracle MySQL HeatWave POC work",
	Long: titleStyle.Render(`
    __               __                              __
   / /_  ___  ____ _/ /__      ______ __   _____  __/ /
  / __ \/ _ \/ __ `+"`"+`/ __/ | /| / / __ `+"`"+`/ | / / _ \/ _  /
 / / / /  __/ /_/ / /_ | |/ |/ / /_/ /| |/ /  __/ /_/ /
/_/ /_/\___/\__,_/\__/ |__/|__/\__,_/ |___/\___/\__,_/
`) + "\n" + subtitleStyle.Render("heatwave poc companion") + "\n\n" +
		"Store HeatWave and OCI credentials locally and run setup, test\n" +
		"and management commands against a HeatWave DB system.",
	Version: "0.1.0",
}

func SetVersionInfo(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
	rootCmd.Version = fmt.Sprintf("%s (built: %s, commit: %s)", version, buildTime, gitCommit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] %v", err)))
		os.Exit(1)
	}
}
