package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"findly-api/config"
	"findly-api/database"
	"findly-api/handlers"
	"findly-api/logger"
	"findly-api/services"
	"findly-api/utils"
	"findly-api/workers"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		logger.L().Error("startup failed", zap.Error(err))
		logger.Sync()
		log.Fatal(err)
	}
}

// run serves until ctx is cancelled. Every resource it opens is released
// before it returns, including on startup errors.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Production); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	lg := logger.L()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			lg.Warn("closing database", zap.Error(err))
		}
	}()
	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	appCfg := handlers.AppConfig{BasePath: cfg.BasePath, AllowedOrigins: cfg.AllowedOrigins}
	if cfg.Storage.Enabled() {
		store, err := utils.NewR2Store(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize R2 client: %w", err)
		}
		appCfg.Images = store
	} else {
		lg.Info("object storage not configured, treasure image upload disabled")
	}

	monitor, err := workers.StartPoolMonitor(db, cfg.PoolStatsInterval)
	if err != nil {
		return fmt.Errorf("failed to start pool monitor: %w", err)
	}
	defer func() {
		if err := monitor.Stop(); err != nil {
			lg.Warn("pool monitor shutdown", zap.Error(err))
		}
	}()

	app := handlers.NewApp(services.New(db, cfg.BcryptCost), appCfg)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listen(":" + cfg.Port)
	}()
	lg.Info("server running",
		zap.String("port", cfg.Port),
		zap.String("base_path", cfg.BasePath),
		zap.String("origins", cfg.AllowedOrigins),
	)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	lg.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		lg.Warn("server shutdown", zap.Error(err))
	}
	return nil
}
