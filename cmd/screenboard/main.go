// Package main is the entry point for the screenboard CLI.
//
// Usage:
//
//	screenboard get 1234
//	screenboard create -f board.json
//	screenboard share 1234
//	screenboard validate
//
// Credentials come from DD_API_KEY/DD_APP_KEY or from a vault source in the
// config file (-c).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "screenboard",
	Short: "Manage datadog screenboards",
	Long: `screenboard creates, fetches, updates, deletes and shares datadog
screenboards through the screenboard API.

Boards are plain JSON files: "get" prints one, "create" and "update" send one
back. Set DD_API_KEY and DD_APP_KEY, or point the config file at a vault
secret holding the pair.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("screenboard %s\n", cli.Version.Version)
		if cli.Version.GitCommit != "" {
			fmt.Printf("  commit: %s\n", cli.Version.GitCommit)
		}
		if cli.Version.BuildDate != "" {
			fmt.Printf("  built:  %s\n", cli.Version.BuildDate)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	rootCmd.AddCommand(versionCmd)
}
