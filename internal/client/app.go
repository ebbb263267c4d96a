// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/spf13/cobra"
)

type App struct {
	root *cobra.Command

	cfg         *config.ClientConfig
	buildInfo   models.AppBuildInfo
	newServices ServicesFactory

	services *service.ClientServices
	closer   io.Closer

	flags  globalFlags
	logger *logger.Logger
}

type globalFlags struct {
	transport   string
	address     string
	grpcAddress string
	timeout     time.Duration
	workers     int
	logLevel    string
}

// NewApp builds the command tree. Flags given on the command line override
// the corresponding fields of cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, newServices ServicesFactory, logger *logger.Logger) *App {
	if newServices == nil {
		newServices = NewServices
	}

	a := &App{
		cfg:         cfg,
		buildInfo:   buildInfo,
		newServices: newServices,
		logger:      logger,
	}

	a.root = &cobra.Command{
		Use:   "slot-client",
		Short: "Validate slot payloads against a slot validation server",
		Long: `slot-client sends slot payloads to a slot validation server and prints
the result as JSON.

Payload files may be JSON or YAML (by extension); "-" reads JSON from stdin.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.flags.transport, "transport", cfg.Adapter.Transport, "Transport to use: http or grpc")
	pf.StringVarP(&a.flags.address, "address", "a", cfg.Adapter.HTTPAddress, "HTTP address of the server")
	pf.StringVar(&a.flags.grpcAddress, "grpc-address", cfg.Adapter.GRPCAddress, "gRPC address of the server")
	pf.DurationVar(&a.flags.timeout, "timeout", cfg.Adapter.RequestTimeout, "Timeout of a single request")
	pf.IntVarP(&a.flags.workers, "workers", "w", cfg.Adapter.Workers, "Payloads validated concurrently by batch")
	pf.StringVar(&a.flags.logLevel, "log-level", cfg.App.LogLevel, "Log level")

	a.root.AddCommand(
		a.newFiniteCmd(),
		a.newNumericCmd(),
		a.newValidateCmd(),
		a.newBatchCmd(),
		a.newVersionCmd(),
	)

	return a
}

// NewServices connects to the server with the configured transport.
func NewServices(cfg config.Adapter, logger *logger.Logger) (*service.ClientServices, io.Closer, error) {
	serverAdapter, err := adapter.NewSlotValidationAdapter(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create server adapter: %w", err)
	}
	return service.NewClientServices(serverAdapter, cfg.Workers, logger), serverAdapter, nil
}

// Run executes the process arguments until done or interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Execute(ctx, os.Args[1:])
}

// Execute runs the command tree with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer func() {
		if err := a.close(); err != nil {
			a.logger.Warn().Err(err).Msg("error closing server connection")
		}
	}()

	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// SetOutput redirects command output and errors.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || strings.HasPrefix(cmd.CommandPath(), a.root.Name()+" completion") {
		return nil
	}

	a.cfg.Adapter.Transport = a.flags.transport
	a.cfg.Adapter.HTTPAddress = a.flags.address
	a.cfg.Adapter.GRPCAddress = a.flags.grpcAddress
	a.cfg.Adapter.RequestTimeout = a.flags.timeout
	a.cfg.Adapter.Workers = a.flags.workers
	a.cfg.App.LogLevel = a.flags.logLevel

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid client configuration: %w", err)
	}
	if err := a.logger.SetLevel(a.cfg.App.LogLevel); err != nil {
		return err
	}

	services, closer, err := a.newServices(a.cfg.Adapter, a.logger)
	if err != nil {
		return err
	}
	a.services, a.closer = services, closer

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("transport", a.cfg.Adapter.Transport).
		Msg("client services ready")
	return nil
}

func (a *App) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
