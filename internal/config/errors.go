package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing listen addresses or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEngineConfigs indicates non-positive engine limits.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidAppConfigs indicates an unknown log level or empty version.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, unknown transport or missing address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnsupportedConfigFormat is returned for config files that are not
	// JSON, YAML or TOML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
