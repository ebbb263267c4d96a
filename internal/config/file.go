package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a config file. The same
// field names are used for JSON, YAML and TOML.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version" toml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty" toml:"app"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		GRPCAddress        string   `json:"grpc_address" yaml:"grpc_address" toml:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	} `json:"server,omitempty" yaml:"server,omitempty" toml:"server"`

	Engine struct {
		MaxConstraintLength       int  `json:"max_constraint_length" yaml:"max_constraint_length" toml:"max_constraint_length"`
		MaxConstraintDepth        int  `json:"max_constraint_depth" yaml:"max_constraint_depth" toml:"max_constraint_depth"`
		MaxConstraintNodes        int  `json:"max_constraint_nodes" yaml:"max_constraint_nodes" toml:"max_constraint_nodes"`
		UppercasePickFirstNumeric bool `json:"uppercase_pick_first_numeric" yaml:"uppercase_pick_first_numeric" toml:"uppercase_pick_first_numeric"`
	} `json:"engine,omitempty" yaml:"engine,omitempty" toml:"engine"`

	Adapter struct {
		Transport      string   `json:"transport" yaml:"transport" toml:"transport"`
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		Workers        int      `json:"workers" yaml:"workers" toml:"workers"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty" toml:"adapter"`
}

// parseFile decodes the config file at path. The format is picked by the
// file extension: .json, .yaml/.yml or .toml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:        f.Server.HTTPAddress,
			GRPCAddress:        f.Server.GRPCAddress,
			RequestTimeout:     time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(f.Server.ShutdownTimeout),
			CORSAllowedOrigins: f.Server.CORSAllowedOrigins,
		},
		Engine: Engine{
			MaxConstraintLength:       f.Engine.MaxConstraintLength,
			MaxConstraintDepth:        f.Engine.MaxConstraintDepth,
			MaxConstraintNodes:        f.Engine.MaxConstraintNodes,
			UppercasePickFirstNumeric: f.Engine.UppercasePickFirstNumeric,
		},
		Adapter: Adapter{
			Transport:      f.Adapter.Transport,
			HTTPAddress:    f.Adapter.HTTPAddress,
			GRPCAddress:    f.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			Workers:        f.Adapter.Workers,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in every supported file format. JSON also accepts a number
// of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

// UnmarshalText is used by the YAML and TOML decoders.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
