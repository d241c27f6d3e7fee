package main

import (
	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a screenboard with the contents of a board JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringP("file", "f", "", "path to the board JSON file (required)")
	_ = updateCmd.MarkFlagRequired("file")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseBoardID(args[0])
	if err != nil {
		return err
	}
	board, err := readBoardFile(cmd)
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
	return client.Update(cmd.Context(), id, board)
}
