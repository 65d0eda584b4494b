package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/itz-Mayank/Environmental-Sustainability/config"
	"github.com/itz-Mayank/Environmental-Sustainability/logger"
	"github.com/itz-Mayank/Environmental-Sustainability/routes"
	"github.com/itz-Mayank/Environmental-Sustainability/services"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.WithComponent("main")

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, authenticated routes will refuse requests")
	}

	var store storage.Store
	if dsn := cfg.PostgresDSN(); dsn != "" {
		gs, err := storage.OpenPostgres(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		store = gs
		log.Info().Msg("using postgres store")
	} else {
		store = storage.NewMemoryStore()
		log.Info().Msg("no database configured, using in-memory store")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	hub := services.NewRealtimeHub()
	snapshots := services.NewSnapshotService()
	evaluator := services.NewAlertEvaluator(store, snapshots)
	monitor := services.NewMonitor(hub, snapshots, evaluator, 30*time.Second)
	go monitor.Run(ctx)

	r := routes.SetupRouter(store, hub)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
