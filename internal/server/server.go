package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/handler"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

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

	if err := s.run(ctx, s.httpServer.listenAndServe); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run starts the HTTP server with start and blocks until ctx is done, then
// shuts the server down. If start returns first (e.g. the address is already
// in use) run returns without waiting for ctx.
func (s *server) run(ctx context.Context, start func() error) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	stopped := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		stopped <- start()
	}()

	select {
	case err := <-stopped:
		if err == nil {
			err = errServerStopped
		}
		return fmt.Errorf("http server exited before shutdown: %w", err)
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-stopped; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
