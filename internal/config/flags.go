package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config config file path (.json, .yaml, .yml or .toml)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-log-level log level (debug, info, ...)
//	-cors-origins comma separated allowed origins
//	-max-constraint-length / -max-constraint-depth / -max-constraint-nodes
//	-uppercase-pick-first upper-case pick-first numeric text values
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("slot-validation-server", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var configPath string
	var requestTimeout, shutdownTimeout time.Duration
	var logLevel string
	var corsOrigins string
	var maxLength, maxDepth, maxNodes int
	var uppercasePickFirst bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated CORS origins")
	fs.IntVar(&maxLength, "max-constraint-length", 0, "Maximum constraint length in bytes")
	fs.IntVar(&maxDepth, "max-constraint-depth", 0, "Maximum constraint nesting depth")
	fs.IntVar(&maxNodes, "max-constraint-nodes", 0, "Maximum constraint syntax nodes")
	fs.BoolVar(&uppercasePickFirst, "uppercase-pick-first", false, "Upper-case pick-first numeric text values")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var origins []string
	if corsOrigins != "" {
		origins = strings.Split(corsOrigins, ",")
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			GRPCAddress:        grpcServerAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: origins,
		},
		Engine: Engine{
			MaxConstraintLength:       maxLength,
			MaxConstraintDepth:        maxDepth,
			MaxConstraintNodes:        maxNodes,
			UppercasePickFirstNumeric: uppercasePickFirst,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
