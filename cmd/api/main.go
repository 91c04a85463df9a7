package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"support-router/config"
	_ "support-router/docs" // Swagger docs
	"support-router/internal/application"
	"support-router/internal/httpserver"
	"support-router/pkg/log"
)

// @title       Support Router API
// @description Customer-support request router: classifies queries, orchestrates customer and ticket lookups, and generates replies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Support Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Components
	app, err := application.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize components: ", err)
		os.Exit(1)
	}
	defer app.Close()

	var ready func() error
	if app.DB != nil {
		ready = func() error { return app.DB.PingContext(ctx) }
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		CustomerUC:  app.Customer,
		SupportUC:   app.Support,
		Router:      app.Router,
		Ready:       ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
