// Package app wires the application together: configuration, logging,
// database pool, services, HTTP transport, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/attendly/feedback-backend/internal/adapter/gemini"
	"github.com/attendly/feedback-backend/internal/adapter/postgres"
	analysisrepo "github.com/attendly/feedback-backend/internal/adapter/postgres/analysis"
	formrepo "github.com/attendly/feedback-backend/internal/adapter/postgres/form"
	responserepo "github.com/attendly/feedback-backend/internal/adapter/postgres/response"
	"github.com/attendly/feedback-backend/internal/config"
	analysissvc "github.com/attendly/feedback-backend/internal/service/analysis"
	formsvc "github.com/attendly/feedback-backend/internal/service/form"
	"github.com/attendly/feedback-backend/internal/transport/middleware"
	"github.com/attendly/feedback-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until the context is
// canceled or a termination signal arrives, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	aiClient, err := gemini.New(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}

	forms := formrepo.New(pool)
	responses := responserepo.New(pool)
	analyses := analysisrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	formService := formsvc.NewService(logger, forms, responses, txManager)
	analysisService := analysissvc.NewService(logger, analyses, forms, responses, aiClient)

	router := rest.NewRouter(
		rest.NewFormHandler(formService, logger),
		rest.NewAnalysisHandler(analysisService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
