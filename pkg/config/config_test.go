package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestConfig_merge(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *Config
		other *Config
		want  *Config
	}{
		{
			name: "merge nil config does nothing",
			cfg: &Config{
				LogLevel: "info",
				Timeout:  5 * time.Second,
				APIKey:   "key",
			},
			other: nil,
			want: &Config{
				LogLevel: "info",
				Timeout:  5 * time.Second,
				APIKey:   "key",
			},
		},
		{
			name: "merge empty config does nothing",
			cfg: &Config{
				LogLevel: "info",
				Timeout:  5 * time.Second,
				Vault:    VaultConfig{Address: "https://vault.local"},
			},
			other: &Config{},
			want: &Config{
				LogLevel: "info",
				Timeout:  5 * time.Second,
				Vault:    VaultConfig{Address: "https://vault.local"},
			},
		},
		{
			name: "merge overwrites non empty values",
			cfg: &Config{
				LogLevel: "info",
				APIURL:   "https://old.example.com",
				Timeout:  3 * time.Second,
				Vault: VaultConfig{
					Address:     "https://vault.local",
					APIKeyField: "api_key",
				},
			},
			other: &Config{
				LogLevel: "debug",
				APIURL:   "https://new.example.com",
				Vault: VaultConfig{
					SecretPath: "/kv/datadog",
					Token:      "token",
				},
			},
			want: &Config{
				LogLevel: "debug",
				APIURL:   "https://new.example.com",
				Timeout:  3 * time.Second,
				Vault: VaultConfig{
					Address:     "https://vault.local",
					APIKeyField: "api_key",
					SecretPath:  "/kv/datadog",
					Token:       "token",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.merge(tt.other)
			if !reflect.DeepEqual(tt.cfg, tt.want) {
				t.Errorf("merge() got = %+v, want %+v", tt.cfg, tt.want)
			}
		})
	}
}

func TestConfig_Load(t *testing.T) {
	yamlConfig := `
logLevel: debug
apiUrl: https://app.datadoghq.eu/api/v1/screen
timeout: 7s
vault:
  address: https://vault.local
  secretPath: /kv/datadog
`
	t.Setenv("DD_API_KEY", "env-api-key")
	t.Setenv("DD_APP_KEY", "env-app-key")
	t.Setenv("VAULT_TOKEN", "env-token")

	cfg, err := Default().WithReader(strings.NewReader(yamlConfig)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.APIURL != "https://app.datadoghq.eu/api/v1/screen" {
		t.Errorf("APIURL = %s", cfg.APIURL)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Timeout = %s, want 7s", cfg.Timeout)
	}
	// env always wins over the file
	if cfg.APIKey != "env-api-key" || cfg.ApplicationKey != "env-app-key" {
		t.Errorf("credentials not read from env: %+v", cfg)
	}
	if cfg.Vault.Token != "env-token" {
		t.Errorf("Vault.Token = %s, want env-token", cfg.Vault.Token)
	}
	// file values merged on top of defaults
	if cfg.Vault.APIKeyField != "api_key" || cfg.Vault.ApplicationKeyField != "application_key" {
		t.Errorf("vault field defaults lost: %+v", cfg.Vault)
	}
}

func TestConfig_Load_emptyFile(t *testing.T) {
	cfg, err := Default().WithReader(strings.NewReader("")).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want default info", cfg.LogLevel)
	}
}

func TestConfig_Load_unknownField(t *testing.T) {
	_, err := Default().WithReader(strings.NewReader("unknownField: x\n")).Load()
	if err == nil {
		t.Error("Load() expected an error for unknown config fields")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "static keys",
			cfg:  &Config{APIKey: "a", ApplicationKey: "b"},
		},
		{
			name: "vault source",
			cfg: &Config{
				Vault: VaultConfig{
					Address:    "https://vault.local",
					SecretPath: "/kv/datadog",
					Token:      "token",
				},
			},
		},
		{
			name:    "no credentials at all",
			cfg:     &Config{},
			wantErr: true,
		},
		{
			name: "vault source without token",
			cfg: &Config{
				Vault: VaultConfig{
					Address:    "https://vault.local",
					SecretPath: "/kv/datadog",
				},
			},
			wantErr: true,
		},
		{
			name: "vault source without secret path",
			cfg: &Config{
				Vault: VaultConfig{
					Address: "https://vault.local",
					Token:   "token",
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
