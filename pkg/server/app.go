package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"MarketPulse/pkg/config"
	xhttp "MarketPulse/pkg/http"
	applogger "MarketPulse/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server startup, signal
// handling and graceful shutdown.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	a.logger.Info("orchestrator started",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Strings("symbols", a.cfg.Orchestrator.DefaultSymbols),
		applogger.Bool("primary_tier", a.cfg.HasCredential()))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
