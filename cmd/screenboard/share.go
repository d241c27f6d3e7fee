package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print the public sharing url of a screenboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	id, err := parseBoardID(args[0])
	if err != nil {
		return err
	}
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := cli.NewClient(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	publicURL, err := client.GetPublicURL(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Println(publicURL)
	return nil
}
