package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "remora-cli",
	Short: "Remora CLI tool",
	Long: `Remora CLI is a command-line interface for the Remora server.

Available commands:
  serve    Run the HTTP server
  version  Print the version number

Use "remora-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
