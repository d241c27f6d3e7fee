package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"screenboard-client/internal/cli"
	"screenboard-client/pkg/screenboard/widgets"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a screenboard from a board JSON file",
	Long: `Create a screenboard from a board JSON file and print the id datadog
assigned to it.

Example:
  screenboard create -f board.json`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("file", "f", "", "path to the board JSON file (required)")
	_ = createCmd.MarkFlagRequired("file")
}

func runCreate(cmd *cobra.Command, args []string) error {
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
	id, err := client.Create(cmd.Context(), board)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func readBoardFile(cmd *cobra.Command) (*widgets.Board, error) {
	path, _ := cmd.Flags().GetString("file")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var board widgets.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("can't decode board file '%s': %w", path, err)
	}
	return &board, nil
}
