package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the admin client transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the target server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level admin client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges the same sources as [GetStructuredConfig] but skips the
// server-side validation, maps only the fields relevant to the client
// runtime, and validates the resulting [ClientConfig]. The adapter address
// and timeout fall back to the server-side values so the CLI works out of the
// box against a locally configured server.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
