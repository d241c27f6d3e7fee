// Package cli wires configuration, credentials and the API client together
// for the screenboard command line tool.
package cli

import (
	"context"

	"go.uber.org/zap"

	"screenboard-client/pkg/config"
	"screenboard-client/pkg/creds"
	"screenboard-client/pkg/screenboard"
)

// NewClient builds an API client from resolved configuration.
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*screenboard.Client, error) {
	pair, err := creds.Resolve(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts := []screenboard.Option{screenboard.WithLogger(logger)}
	if cfg.APIURL != "" {
		opts = append(opts, screenboard.WithAPIURL(cfg.APIURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, screenboard.WithTimeout(cfg.Timeout))
	}
	return screenboard.New(pair.ApplicationKey, pair.APIKey, opts...)
}
