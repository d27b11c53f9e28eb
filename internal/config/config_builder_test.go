package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "stock-keeper",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/stock"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestBuild_MergesSourcesInOrder(t *testing.T) {
	b := newConfigBuilder()

	first := validConfig()
	second := &StructuredConfig{App: App{Version: "1.0.0"}}

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	// fields from both sources survive the merge
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()

	first := validConfig()
	first.Server.HTTPAddress = "localhost:1111"
	second := validConfig()
	second.Server.HTTPAddress = "localhost:2222"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the already-set value from the earlier source
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
