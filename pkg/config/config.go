package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func (cfg *Config) WithReader(r io.Reader) *Config {
	if r != nil {
		cfg.reader = r
	}
	return cfg
}

// Load loads the config in the following sequence:
// Default < Config file < ENV variables
// If there is no config file, then it is skipped
func (cfg *Config) Load() (*Config, error) {
	var tmp *Config
	var err error
	if cfg.reader != nil {
		tmp, err = cfg.loadFromReader()
		if err != nil {
			return nil, err
		}
	}
	if tmp != nil {
		cfg.merge(tmp)
	}
	tmp, err = readFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.merge(tmp)
	return cfg, nil
}

func (cfg *Config) loadFromReader() (*Config, error) {
	decoder := yaml.NewDecoder(cfg.reader)
	decoder.KnownFields(true)
	tmp := &Config{}
	err := decoder.Decode(tmp)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't decode config: %w", err)
	}
	return tmp, nil
}

func readFromEnv() (*Config, error) {
	cfg := &Config{}

	// Only set values if environment variables are actually set
	if apiKey := GetEnv("DD_API_KEY", ""); apiKey != "" {
		cfg.APIKey = apiKey
	}
	if appKey := GetEnv("DD_APP_KEY", ""); appKey != "" {
		cfg.ApplicationKey = appKey
	}
	if apiURL := GetEnv("SCREENBOARD_API_URL", ""); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if logLevel := GetEnv("LOG_LEVEL", ""); logLevel != "" {
		cfg.LogLevel = strings.ToLower(logLevel)
	}
	if token := GetEnv("VAULT_TOKEN", ""); token != "" {
		cfg.Vault.Token = token
	}
	if timeoutStr := GetEnv("TIMEOUT", ""); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid duration value: %s", timeoutStr)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// merge merges this config with another config
// if another config has empty values, then original values are not overwritten
func (cfg *Config) merge(config *Config) {
	if config == nil {
		return
	}
	if config.LogLevel != "" {
		cfg.LogLevel = config.LogLevel
	}
	if config.APIURL != "" {
		cfg.APIURL = config.APIURL
	}
	if config.Timeout != 0 {
		cfg.Timeout = config.Timeout
	}
	if config.APIKey != "" {
		cfg.APIKey = config.APIKey
	}
	if config.ApplicationKey != "" {
		cfg.ApplicationKey = config.ApplicationKey
	}
	if config.Vault.Address != "" {
		cfg.Vault.Address = config.Vault.Address
	}
	if config.Vault.SecretPath != "" {
		cfg.Vault.SecretPath = config.Vault.SecretPath
	}
	if config.Vault.APIKeyField != "" {
		cfg.Vault.APIKeyField = config.Vault.APIKeyField
	}
	if config.Vault.ApplicationKeyField != "" {
		cfg.Vault.ApplicationKeyField = config.Vault.ApplicationKeyField
	}
	if config.Vault.Token != "" {
		cfg.Vault.Token = config.Vault.Token
	}
}

func GetEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok {
		return strings.ReplaceAll(val, " ", "")
	}
	return defaultValue
}
