// Package creds resolves and validates the datadog credential pair. Keys
// come straight from configuration/environment, or from a Vault KV secret
// when a vault source is configured.
package creds

import (
	"context"
	"fmt"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"

	"screenboard-client/pkg/config"
	"screenboard-client/pkg/errs"
)

// Pair is the two tokens datadog requires on every request.
type Pair struct {
	APIKey         string
	ApplicationKey string
}

// Resolve produces the credential pair from config. Static keys win; the
// vault source is consulted only when they are absent.
func Resolve(ctx context.Context, cfg *config.Config) (Pair, error) {
	if cfg.APIKey != "" && cfg.ApplicationKey != "" {
		return Pair{APIKey: cfg.APIKey, ApplicationKey: cfg.ApplicationKey}, nil
	}
	if cfg.Vault.Address == "" {
		return Pair{}, errs.NewInvalidArgument("datadog credentials")
	}
	source, err := newVaultSource(cfg.Vault, cfg.Timeout)
	if err != nil {
		return Pair{}, err
	}
	return source.fetch(ctx)
}

// withAuth creates a new context with datadog API authentication
func withAuth(ctx context.Context, pair Pair) context.Context {
	authCtx := datadog.NewDefaultContext(ctx)
	return context.WithValue(authCtx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: pair.APIKey},
		"appKeyAuth": {Key: pair.ApplicationKey},
	})
}

// Validate checks the pair against datadog's key validation endpoint.
func Validate(ctx context.Context, pair Pair) error {
	if pair.APIKey == "" || pair.ApplicationKey == "" {
		return errs.NewInvalidArgument("datadog credentials")
	}
	configuration := datadog.NewConfiguration()
	apiClient := datadog.NewAPIClient(configuration)
	authApi := datadogV1.NewAuthenticationApi(apiClient)

	validation, _, err := authApi.Validate(withAuth(ctx, pair))
	if err != nil {
		return fmt.Errorf("datadog API connection failed: %w", err)
	}
	if !validation.GetValid() {
		return fmt.Errorf("invalid datadog credentials")
	}
	return nil
}
