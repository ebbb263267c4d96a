package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/handler"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	transports      []transport
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errNoHandler
		}
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, errNoHandler
		}
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("transport", t.name()).Msg("error shutting down")
		}
	}
}

// run binds every transport, serves until ctx is done or one of them fails,
// then shuts all of them down.
func (s *server) run(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.transports))
	for _, t := range s.transports {
		lis, err := net.Listen("tcp", t.address())
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return fmt.Errorf("%s server listen on %s: %w", t.name(), t.address(), err)
		}
		listeners = append(listeners, lis)
	}

	serveErrs := make(chan error, len(s.transports))
	for i, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func(t transport, lis net.Listener) {
			serveErrs <- t.serve(lis)
		}(t, listeners[i])
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErrs:
		runErr = err
		if runErr == nil {
			runErr = errors.New("server stopped unexpectedly")
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
