package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/account-opening/internal/config"
	"github.com/deppfellow/account-opening/internal/handler"
	"github.com/deppfellow/account-opening/internal/logger"
	"github.com/deppfellow/account-opening/internal/router"
	"github.com/deppfellow/account-opening/internal/server"
	"github.com/deppfellow/account-opening/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server.

Configuration is read from ACCOUNTS_* environment variables and an optional
.env file, e.g. ACCOUNTS_SERVER__PORT=8080.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return err
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	services, err := service.NewService(srv)
	if err != nil {
		return errors.Wrap(err, "failed to create services")
	}

	r, err := router.NewRouter(srv, handler.NewHandlers(srv, services))
	if err != nil {
		return err
	}

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
	return nil
}
