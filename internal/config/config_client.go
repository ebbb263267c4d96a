package config

import (
	"fmt"
)

// ClientConfig is the configuration of the CLI, assembled from the same
// sources as [StructuredConfig] except command-line flags, which the CLI
// parses itself.
type ClientConfig struct {
	// App contains the version and log level.
	App App
	// Adapter contains the transport, server addresses and timeouts.
	Adapter Adapter
}

// GetClientConfig builds a client config from defaults, .env, environment
// variables and the optional config file.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the CLI and validates them.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}
	return clientCfg, clientCfg.validate()
}

// Validate re-checks the config after command-line overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
