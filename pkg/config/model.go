package config

import (
	"errors"
	"io"
	"time"
)

type Config struct {
	LogLevel string        `yaml:"logLevel"`
	APIURL   string        `yaml:"apiUrl"`
	Timeout  time.Duration `yaml:"timeout"`
	Vault    VaultConfig   `yaml:"vault"`

	// The credential pair is never read from the config file, only from
	// DD_API_KEY/DD_APP_KEY or from the vault source.
	APIKey         string `yaml:"-"`
	ApplicationKey string `yaml:"-"`

	reader io.Reader
}

// VaultConfig describes a Vault KV secret holding the credential pair.
type VaultConfig struct {
	Address             string `yaml:"address"`
	SecretPath          string `yaml:"secretPath"`
	APIKeyField         string `yaml:"apiKeyField"`
	ApplicationKeyField string `yaml:"applicationKeyField"`

	// Token comes from VAULT_TOKEN only.
	Token string `yaml:"-"`
}

func (cfg *Config) Validate() error {
	if cfg.APIKey != "" && cfg.ApplicationKey != "" {
		return nil
	}
	if cfg.Vault.Address == "" {
		return errors.New("set DD_API_KEY/DD_APP_KEY or configure a vault source")
	}
	if cfg.Vault.SecretPath == "" {
		return errors.New("vault source is configured but secretPath is empty")
	}
	if cfg.Vault.Token == "" {
		return errors.New("vault source is configured but VAULT_TOKEN is not set")
	}
	return nil
}

// Default generates default config
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Timeout:  10 * time.Second,
		Vault: VaultConfig{
			APIKeyField:         "api_key",
			ApplicationKeyField: "application_key",
		},
	}
}
