package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"screenboard-client/pkg/creds"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the credential pair against datadog",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pair, err := creds.Resolve(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := creds.Validate(cmd.Context(), pair); err != nil {
		return err
	}
	fmt.Println("credentials are valid")
	return nil
}
