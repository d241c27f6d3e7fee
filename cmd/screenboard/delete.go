package main

import (
	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a screenboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	return client.Delete(cmd.Context(), id)
}
