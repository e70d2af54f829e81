// finchat - keyword-driven financial assistant
// Entry point for the web server
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

	"github.com/findosh/finchat/internal/app"
	"github.com/findosh/finchat/internal/config"
	"github.com/findosh/finchat/internal/handlers"
	"github.com/findosh/finchat/internal/logging"
	"github.com/findosh/finchat/internal/middleware"
	"github.com/findosh/finchat/internal/services/auth"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "finchat server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load price history, transcript and suggestions
	data, err := app.Load(ctx, cfg, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	defer data.Close()

	assistantService, err := app.NewAssistant(cfg, data, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}

	authService := auth.NewService(cfg.APISecret, cfg.TokenTTL)
	authMiddleware := middleware.NewAuth(authService, "/api/health")
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	h := handlers.New(cfg, assistantService, data.Transcripts, data.Catalog, logger.Logger)

	// Apply global middleware
	handler := middleware.Chain(
		h.Routes(),
		middleware.RequestID,
		middleware.Logger(logger.Logger),
		middleware.Recover(logger.Logger),
		middleware.CORS,
		middleware.SecurityHeaders,
		limiter.Middleware,
		authMiddleware.RequireToken,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("finchat server starting",
			"addr", srv.Addr,
			"environment", cfg.Environment,
			"prices", data.Prices.Len(),
			"transcript_sections", data.Transcripts.Len(),
			"token_auth", authService.Enabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
