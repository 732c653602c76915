package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds the support token settings of the CLI.
type ClientApp struct {
	// TokenSignKey signs the bearer JWT sent to the support routes.
	TokenSignKey string
	// TokenIssuer is the "iss" claim expected by the bridge.
	TokenIssuer string
	// TokenDuration is the lifetime of the issued JWT.
	TokenDuration time.Duration
	// Operator is the JWT subject identifying the support operator.
	Operator string
}

// ClientAdapter holds network settings used by the CLI transport layer.
type ClientAdapter struct {
	// HTTPAddress is the consent bridge base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the support CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the CLI view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Operator:      cfg.App.Operator,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
