/*
main.go - Application entry point

PURPOSE:
  Starts the childcare leave eligibility HTTP server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load config (environment, then flags)
  2. Build the structured logger
  3. Load the embedded locale catalogs
  4. Create API handler and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS / ENVIRONMENT:
  -port              PORT                  HTTP server port (default: 8080)
  -log-level         LOG_LEVEL             debug, info, warn, error (default: info)
  -log-format        LOG_FORMAT            json or text (default: json)
  -default-locale    DEFAULT_LOCALE        fallback locale (default: en-US)
  -cors-origins      CORS_ALLOWED_ORIGINS  comma-separated origins
  -shutdown-timeout  SHUTDOWN_TIMEOUT      graceful shutdown timeout (default: 30s)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (shutdown timeout)
  3. Exit

EXAMPLES:
  ./server -port=3000 -log-format=text
  DEFAULT_LOCALE=ja-JP ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Settings
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"github.com/warp/leave-eligibility/api"
	"github.com/warp/leave-eligibility/config"
	"github.com/warp/leave-eligibility/locale"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	catalog := locale.Default()
	defaultLocale, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		logger.Warn("invalid default locale, using base locale",
			"default_locale", cfg.DefaultLocale,
			"base_locale", locale.BaseLocale.String(),
			"error", err,
		)
		defaultLocale = locale.BaseLocale
	}

	handler := api.NewHandler(catalog, logger, defaultLocale)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			"addr", server.Addr,
			"default_locale", handler.DefaultLocale.String(),
			"locales", len(catalog.Supported()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", "timeout", cfg.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
