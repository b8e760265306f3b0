package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/21in7/tos-fronet-sub000/internal/bootstrap"
	"github.com/21in7/tos-fronet-sub000/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Startup aborted", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Startup aborted", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}

	svcs := bootstrap.InitializeServices(cfg, cat, eventBus)
	srv := bootstrap.NewServer(cfg, cat, svcs)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:  srv,
		LogFile: logFile,
	})
}
