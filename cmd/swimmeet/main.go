package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/swimmeet/internal/config"
	"github.com/deppfellow/swimmeet/internal/database"
	"github.com/deppfellow/swimmeet/internal/handler"
	"github.com/deppfellow/swimmeet/internal/lib/email"
	"github.com/deppfellow/swimmeet/internal/logger"
	"github.com/deppfellow/swimmeet/internal/repository"
	"github.com/deppfellow/swimmeet/internal/router"
	"github.com/deppfellow/swimmeet/internal/server"
	"github.com/deppfellow/swimmeet/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// app is what every subcommand needs before doing its own work.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &app{
		cfg:           cfg,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
		loggerService: loggerService,
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:           "swimmeet",
		Short:         "Swim tournament management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the sample tournaments when none exist",
			RunE:  runSeed,
		},
		&cobra.Command{
			Use:   "email-preview [template]",
			Short: "Render an email template with sample data to stdout",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runEmailPreview,
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = a.log.WithContext(ctx)

	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	store := repository.NewStore(srv)

	if a.cfg.Database.SeedOnStart {
		if _, err := service.Seed(ctx, store); err != nil {
			a.log.Error().Err(err).Msg("failed to seed sample data")
			return err
		}
	}

	services, err := service.NewService(srv, store)
	if err != nil {
		a.log.Error().Err(err).Msg("could not create services")
		return err
	}

	if services.Auth.Enabled() {
		a.log.Info().Msg("write routes require a Clerk session token")
	} else {
		a.log.Warn().Msg("auth secret key not configured, write routes are public")
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			a.log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
	}

	a.log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	a.log.Info().Msg("server exited properly")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	return a.migrate(cmd.Context())
}

func (a *app) migrate(ctx context.Context) error {
	if a.cfg.Database.IsMemory() {
		a.log.Info().Msg("memory driver has no schema, nothing to migrate")
		return nil
	}

	if err := database.Migrate(ctx, &a.log, a.cfg); err != nil {
		a.log.Error().Err(err).Msg("migration failed")
		return err
	}
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	return a.seed(cmd.Context())
}

// seed fills a persistent store. The memory store dies with this process,
// so it is left alone; serve with database.seed_on_start covers that case.
func (a *app) seed(ctx context.Context) error {
	if a.cfg.Database.IsMemory() {
		a.log.Info().Msg("memory driver keeps no data between runs, nothing to seed")
		return nil
	}

	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		return err
	}
	defer func() {
		_ = srv.Shutdown(context.Background())
	}()

	if _, err := service.Seed(a.log.WithContext(ctx), repository.NewStore(srv)); err != nil {
		a.log.Error().Err(err).Msg("failed to seed sample data")
		return err
	}
	return nil
}

func runEmailPreview(cmd *cobra.Command, args []string) error {
	name := email.TemplateTournamentCreated
	if len(args) == 1 {
		name = email.Template(args[0])
	}

	html, err := email.RenderPreview(name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}
