// Command server runs the HTTP API for font suggestions.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"

	"github.com/MishC/Gemini-typography/internal/gateway"
	"github.com/MishC/Gemini-typography/internal/observability"
	"github.com/MishC/Gemini-typography/internal/provider"
	"github.com/MishC/Gemini-typography/internal/suggestion"
)

// Config holds all server configuration.
type Config struct {
	// LogLevel is the log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is the log format (json, text)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// HTTP gateway configuration
	Gateway gateway.Config `envPrefix:""`

	// AI provider configuration
	Provider provider.Config `envPrefix:""`
}

func main() {
	// Load configuration from environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	logger.Info("starting typography server",
		"log_level", cfg.LogLevel,
		"http_addr", cfg.Gateway.Addr,
		"provider", cfg.Provider.Kind,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Setup metrics
	obs, err := observability.New("typography-server")
	if err != nil {
		logger.Error("failed to initialize observability", "error", err)
		os.Exit(1)
	}
	metrics, err := observability.NewMetrics(obs.Meter())
	if err != nil {
		logger.Error("failed to create metrics", "error", err)
		os.Exit(1)
	}

	// Build the provider chain
	aiClient, err := provider.New(cfg.Provider)
	if err != nil {
		logger.Error("failed to build provider", "error", err)
		os.Exit(1)
	}
	if chain, ok := aiClient.(*provider.Fallback); ok {
		chain.OnFallback = func(primaryErr error) {
			logger.Warn("primary provider failed, consulting fallback",
				"provider", chain.Primary.Name(),
				"error", primaryErr,
			)
			metrics.SuggestionFallbacks.Add(ctx, 1)
		}
	}

	// Create the suggestion service
	svc := suggestion.NewService(aiClient, metrics, logger)

	// Create and start HTTP server
	server, err := gateway.NewServer(cfg.Gateway, svc, obs, metrics, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	}

	// Graceful shutdown
	logger.Info("initiating graceful shutdown")
	cancel()

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		logger.Error("observability shutdown error", "error", err)
	}

	logger.Info("server stopped")
}

// setupLogger creates a logger based on configuration.
func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
