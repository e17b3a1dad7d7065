package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.APIKeyHashKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/payments"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing hash key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.APIKeyHashKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative pool size",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.MaxOpenConns = -1 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "malformed address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "no-port" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "verbose" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name: "client settings are ignored",
			mutate: func(cfg *StructuredConfig) {
				cfg.Client = Client{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Client: Client{ServerURL: "http://localhost:8080", APIKey: "cal_abc"},
			},
		},
		{
			name:    "missing url",
			cfg:     ClientConfig{Client: Client{APIKey: "cal_abc"}},
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "bad url",
			cfg:     ClientConfig{Client: Client{ServerURL: "not a url", APIKey: "cal_abc"}},
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "missing api key",
			cfg:     ClientConfig{Client: Client{ServerURL: "http://localhost:8080"}},
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name: "bad log level",
			cfg: ClientConfig{
				Client: Client{ServerURL: "http://localhost:8080", APIKey: "cal_abc"},
				Log:    Log{Level: "loud"},
			},
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
