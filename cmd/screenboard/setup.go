package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"screenboard-client/internal/cli"
	"screenboard-client/pkg/config"
)

// setup loads layered configuration and builds the logger shared by every
// subcommand.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer func() { _ = f.Close() }()
		cfg = cfg.WithReader(f)
	}

	cfg, err := cfg.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, cli.Init(cfg.LogLevel), nil
}

func parseBoardID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid screenboard id: '%s'", arg)
	}
	return id, nil
}
