package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/config"
	"github.com/osse101/CraftPlanner_Go/internal/crafting"
	"github.com/osse101/CraftPlanner_Go/internal/database"
	"github.com/osse101/CraftPlanner_Go/internal/database/postgres"
	"github.com/osse101/CraftPlanner_Go/internal/dofusdb"
	"github.com/osse101/CraftPlanner_Go/internal/handler"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
	"github.com/osse101/CraftPlanner_Go/internal/sales"
	"github.com/osse101/CraftPlanner_Go/internal/scheduler"
	"github.com/osse101/CraftPlanner_Go/internal/server"
	"github.com/osse101/CraftPlanner_Go/internal/worker"
)

// @title Craft Planner API
// @version 1.0
// @description Crafting list, ingredient reconciliation and sales ledger for Dofus profiles.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	os.Exit(run())
}

// run wires the application and blocks until shutdown, returning the exit code
func run() int {
	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}
	initLogger(cfg)

	if warnings, _ := config.ValidateEnvWithWarnings(); len(warnings) > 0 {
		for _, w := range warnings {
			slog.Warn("Configuration warning", "warning", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store     profile.Store
		readiness handler.HealthChecker
	)
	if cfg.UsesPostgres() {
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return 1
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			return 1
		}
		store = postgres.NewProfileStore(pool)
		readiness = pool
	} else {
		store = profile.NewMemoryStore()
		slog.Info("Using in-memory profile store, data is lost on restart")
	}

	itemDB := dofusdb.NewClient(dofusdb.Config{
		BaseURL:           cfg.ItemDBURL,
		Game:              cfg.ItemDBGame,
		Language:          cfg.ItemDBLanguage,
		Timeout:           cfg.ItemDBTimeout,
		RequestsPerSecond: cfg.ItemDBRPS,
		Burst:             cfg.ItemDBBurst,
		CacheSize:         cfg.ItemCacheSize,
		CacheTTL:          cfg.ItemCacheTTL,
		MaxConcurrency:    cfg.ItemDBConcurrency,
	})

	persistPool := worker.NewPool(cfg.PersistWorkers, cfg.PersistQueueSize)
	persistPool.Start()
	locks := concurrency.NewLockManager()

	craftingService := crafting.NewService(store, itemDB, persistPool, locks)

	sched := scheduler.New(persistPool)
	if cfg.SessionIdleTTL > 0 {
		sched.Schedule("evict-idle-sessions", cfg.SessionSweepInterval, worker.JobFunc(func(ctx context.Context) error {
			craftingService.EvictIdle(ctx, cfg.SessionIdleTTL)
			return nil
		}))
	}

	// Without an extractor command, image import answers 501
	var extractor sales.Extractor
	if cfg.SalesExtractorCmd != "" {
		cmdExtractor, err := sales.NewCommandExtractor(cfg.SalesExtractorCmd, cfg.SalesExtractorTimeout)
		if err != nil {
			slog.Error("Invalid sales extractor command", "error", err)
			return 1
		}
		extractor = cmdExtractor
	}
	salesService := sales.NewService(store, extractor, locks)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}, server.Services{
		Store:    store,
		Crafting: craftingService,
		Sales:    salesService,
		Catalog:  itemDB,
		Cache:    itemDB,
		Health:   readiness,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		exitCode = 1
	}
	sched.Stop()
	// Flush pending plan saves before the store goes away
	if err := craftingService.Shutdown(shutdownCtx); err != nil {
		slog.Error("Pending saves were not flushed", "error", err)
		exitCode = 1
	}

	slog.Info("Shutdown complete")
	return exitCode
}
