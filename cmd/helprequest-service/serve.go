package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"helprequest-service/internal/auth"
	"helprequest-service/internal/config"
	httpapi "helprequest-service/internal/http"
	"helprequest-service/internal/logger"
	"helprequest-service/internal/repository"
	"helprequest-service/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging)
			return repository.Migrate(contextOrBackground(cmd.Context()), cfg.Database.DSN, log)
		},
	}
}

func runServe(parent context.Context) error {
	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(contextOrBackground(parent), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging).With(slog.String("env", cfg.Env))
	if cfg.IsProduction() && slices.Contains(cfg.Server.CORSAllowedOrigins, "*") {
		log.Warn("CORS allows any origin in production")
	}

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, cfg.Database.DSN, log); err != nil {
			return err
		}
	}

	db, err := repository.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer db.Close()

	// 1. Хранилище и транзакции
	helpRequestRepo := repository.NewHelpRequestRepo(db)
	txManager := repository.NewTransactionManager(db)

	// 2. Сервис
	helpRequestService := service.NewHelpRequestService(helpRequestRepo, txManager, log)

	// 3. Аутентификация и права
	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authn := auth.NewAuthenticator(tokens, cfg.Auth.AdminEmails)
	authz, err := auth.NewAuthorizer()
	if err != nil {
		return fmt.Errorf("init authorizer: %w", err)
	}

	// 4. HTTP
	handler := httpapi.NewHandler(helpRequestService, authn, authz, log, cfg.Server.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("server shutdown error", slog.Any("err", err))
		return err
	}

	log.Info("server stopped")
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
