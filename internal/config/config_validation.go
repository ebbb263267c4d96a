// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: listen addresses are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Engine.MaxConstraintLength <= 0 || cfg.Engine.MaxConstraintDepth <= 0 || cfg.Engine.MaxConstraintNodes <= 0 {
		return fmt.Errorf("%w: constraint limits must be positive", ErrInvalidEngineConfigs)
	}

	return nil
}

func (app App) validate() error {
	if app.Version == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(app.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	switch cfg.Adapter.Transport {
	case TransportHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is required", ErrInvalidAdapterConfigs)
		}
	case TransportGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return fmt.Errorf("%w: grpc address is required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Workers <= 0 {
		return fmt.Errorf("%w: timeout and workers must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
