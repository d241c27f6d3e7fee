package creds

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/vault-client-go"

	"screenboard-client/pkg/config"
	"screenboard-client/pkg/errs"
)

type vaultClient interface {
	Read(ctx context.Context, path string, options ...vault.RequestOption) (*vault.Response[map[string]interface{}], error)
}

type wrapper struct {
	client *vault.Client
}

func (w wrapper) Read(ctx context.Context, path string, options ...vault.RequestOption) (*vault.Response[map[string]interface{}], error) {
	return w.client.Read(ctx, path, options...)
}

type vaultSource struct {
	client vaultClient
	cfg    config.VaultConfig
}

func newVaultSource(cfg config.VaultConfig, timeout time.Duration) (*vaultSource, error) {
	if cfg.Token == "" {
		return nil, errs.NewInvalidArgument("vault token")
	}
	if cfg.SecretPath == "" {
		return nil, errs.NewInvalidArgument("vault secret path")
	}
	client, err := vault.New(
		vault.WithAddress(cfg.Address),
		vault.WithRequestTimeout(timeout),
	)
	if err != nil {
		return nil, err
	}
	if err = client.SetToken(cfg.Token); err != nil {
		return nil, err
	}
	return &vaultSource{client: wrapper{client}, cfg: cfg}, nil
}

func (s *vaultSource) fetch(ctx context.Context) (Pair, error) {
	resp, err := s.client.Read(ctx, s.cfg.SecretPath)
	if err != nil {
		return Pair{}, err
	}
	data := resp.Data
	// KVv2 nests the secret fields one level down
	if nested, ok := data["data"].(map[string]interface{}); ok {
		data = nested
	}
	apiKey, _ := data[s.cfg.APIKeyField].(string)
	appKey, _ := data[s.cfg.ApplicationKeyField].(string)
	if apiKey == "" || appKey == "" {
		return Pair{}, fmt.Errorf("secret '%s' is missing '%s'/'%s'",
			s.cfg.SecretPath, s.cfg.APIKeyField, s.cfg.ApplicationKeyField)
	}
	return Pair{APIKey: apiKey, ApplicationKey: appKey}, nil
}
