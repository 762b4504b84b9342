package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pad-config/internal/config"
	"github.com/MKhiriev/go-pad-config/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.HTTP, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandlerProvided
	}

	logger.Info().Str("addr", cfg.Addr()).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Launching HTTP server")

	if err := s.httpServer.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	if err := s.httpServer.shutdown(); err != nil {
		s.logger.Error().Err(err).Msg("error shutting down server")
	}
}
