// Package config provides configuration loading, merging, and validation
// facilities for the slot validation service and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file (loaded into the process environment)
//  3. Environment variables
//  4. Command-line flags (server only)
//  5. A config file: JSON, YAML or TOML, chosen by extension
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
