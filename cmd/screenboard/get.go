package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a screenboard and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
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
	board, err := client.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
