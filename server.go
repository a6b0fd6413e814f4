package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Yatube/auth"
	"Yatube/cache"
	"Yatube/config"
	"Yatube/controllers"
	"Yatube/models"
	"Yatube/monitoring"
	"Yatube/seed"
	"Yatube/utils/logger"

	"go.uber.org/zap"
)

var server = controllers.Server{}

// Run dispatches a command line: serve (default), clearcache or seed.
func Run(args []string) error {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, !cfg.IsProduction()); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if err := monitoring.InitSentry(cfg.SentryDSN, cfg.AppEnv); err != nil {
		logger.Logger.Warn("sentry disabled", zap.Error(err))
	}
	defer monitoring.FlushSentry()

	auth.Configure(cfg.SessionSecret, cfg.SessionTTL)

	command := "serve"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "serve":
		return serve(cfg)
	case "clearcache":
		return clearCache(cfg)
	case "seed":
		return loadDemoData(cfg)
	default:
		return fmt.Errorf("unknown command %q (want serve, clearcache or seed)", command)
	}
}

func serve(cfg *config.Config) error {
	if cfg.IsProduction() && cfg.SessionSecret == "change-me" {
		return errors.New("SESSION_SECRET must be set in production")
	}

	if err := server.Initialize(cfg); err != nil {
		return err
	}
	if cfg.SeedDemoData {
		if err := seed.Load(server.DB); err != nil {
			logger.Logger.Error("seeding demo data failed", zap.Error(err))
		}
	}

	addr := ":" + strings.TrimSpace(cfg.Port)
	return server.Run(addr)
}

// clearCache empties the shared Redis page cache. The in-process cache lives
// only inside a running server and goes away with it.
func clearCache(cfg *config.Config) error {
	if err := cache.Init(cfg); err != nil {
		return err
	}
	if cache.Client == nil {
		logger.Logger.Warn("no Redis configured; nothing to clear outside the server process")
		return nil
	}
	defer cache.Client.Close()

	if err := cache.New(cfg).Clear(context.Background()); err != nil {
		return fmt.Errorf("clear page cache: %w", err)
	}
	logger.Logger.Info("page cache cleared")
	return nil
}

func loadDemoData(cfg *config.Config) error {
	db, err := controllers.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	if err := models.Migrate(db); err != nil {
		return err
	}
	return seed.Load(db)
}
