package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-data/internal/app"
	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/observability"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		ServiceName: cfg.ServiceName,
		Environment: cfg.AppEnv,
	})

	shutdownTracing, otelCore, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	logger = logger.Tee(otelCore)

	shippedLogger, shutdownLogShip, err := observability.InitLogShipper(cfg, logger)
	if err != nil {
		logger.Error("init log shipper", "error", err)
		os.Exit(1)
	}
	logger = shippedLogger
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	stopPprof, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	service, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"store_driver", cfg.StoreDriver,
			"provider_enabled", cfg.FootballAPIEnabled,
		)
		if err := service.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		logger.Error("http server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := service.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if err := stopPprof(shutdownCtx); err != nil {
		logger.Warn("stop pprof server", "error", err)
	}
	if err := stopProfiler(); err != nil {
		logger.Warn("stop pyroscope", "error", err)
	}
	if err := shutdownLogShip(shutdownCtx); err != nil {
		logger.Warn("flush log shipper", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("shutdown uptrace", "error", err)
	}

	logger.Info("http server stopped")
	if exitCode != 0 {
		_ = logger.Sync()
		os.Exit(exitCode)
	}
}
