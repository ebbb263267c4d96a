// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Engine holds the limits and switches of the validation engine.
	Engine Engine `envPrefix:"ENGINE_"`

	// Adapter holds the settings the CLI uses to reach a server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is the optional path to a JSON, YAML or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of both servers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Engine holds the settings of the validation engine.
type Engine struct {
	// MaxConstraintLength is the maximum constraint size in bytes.
	// Env: ENGINE_MAX_CONSTRAINT_LENGTH
	MaxConstraintLength int `env:"MAX_CONSTRAINT_LENGTH"`

	// MaxConstraintDepth is the maximum nesting depth of a constraint.
	// Env: ENGINE_MAX_CONSTRAINT_DEPTH
	MaxConstraintDepth int `env:"MAX_CONSTRAINT_DEPTH"`

	// MaxConstraintNodes is the maximum number of syntax nodes in a constraint.
	// Env: ENGINE_MAX_CONSTRAINT_NODES
	MaxConstraintNodes int `env:"MAX_CONSTRAINT_NODES"`

	// UppercasePickFirstNumeric makes the numeric validator upper-case a
	// textual value returned in pick-first mode.
	// Env: ENGINE_UPPERCASE_PICK_FIRST_NUMERIC
	UppercasePickFirstNumeric bool `env:"UPPERCASE_PICK_FIRST_NUMERIC"`
}

// Adapter holds the settings the CLI uses to talk to a running server.
type Adapter struct {
	// Transport is "http" or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// HTTPAddress is the base address of the HTTP API (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the gRPC API (e.g. "localhost:9090").
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Workers is the number of payloads validated concurrently by "batch".
	// Env: ADAPTER_WORKERS
	Workers int `env:"WORKERS"`
}

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:        "localhost:8080",
			GRPCAddress:        "localhost:9090",
			RequestTimeout:     30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Engine: Engine{
			MaxConstraintLength: 1024,
			MaxConstraintDepth:  32,
			MaxConstraintNodes:  256,
		},
		Adapter: Adapter{
			Transport:      TransportHTTP,
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 10 * time.Second,
			Workers:        4,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server
// configuration. Flags are read from os.Args.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}

func dotEnvPath() string {
	if p := os.Getenv("DOTENV"); p != "" {
		return p
	}
	return ".env"
}
