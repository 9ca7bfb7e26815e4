package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geoquest/GeoQuest_Go/internal/bootstrap"
	"github.com/geoquest/GeoQuest_Go/internal/config"
	"github.com/geoquest/GeoQuest_Go/internal/database"
	"github.com/geoquest/GeoQuest_Go/internal/server"
)

// @title GeoQuest API
// @version 1.0
// @description Plant care verification service
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("GeoQuest exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dbPool, err := database.NewPool(startCtx, cfg.PoolSettings())
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(startCtx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	careService, err := bootstrap.InitializeCareService(startCtx, cfg, repos)
	if err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Version:        cfg.Version,
	}, dbPool, careService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = err
		}
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:      srv,
		CareService: careService,
		DBPool:      dbPool,
	})

	return runErr
}
