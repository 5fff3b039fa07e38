package main

import (
	"context"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/campushire/recruitment-system/internal/api"
	"github.com/campushire/recruitment-system/internal/api/metrics"
	"github.com/campushire/recruitment-system/internal/core/service"
	"github.com/campushire/recruitment-system/internal/infrastructure/config"
	mongostore "github.com/campushire/recruitment-system/internal/infrastructure/db/mongo"
	redisstore "github.com/campushire/recruitment-system/internal/infrastructure/db/redis"
	"github.com/campushire/recruitment-system/internal/infrastructure/queue"
	"github.com/campushire/recruitment-system/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	gaugeInterval   = 10 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	accountRepo := mongostore.NewAccountRepository(db)
	partnershipRepo := mongostore.NewPartnershipRepository(db)
	jobRepo := mongostore.NewJobRepository(db)
	activityRepo := mongostore.NewActivityRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"accounts":     accountRepo.EnsureIndexes,
		"partnerships": partnershipRepo.EnsureIndexes,
		"jobs":         jobRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Redis (optional cache) ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, college directory cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// --- Audit trail workers ---
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)
	go sampleQueueDepth(ctx, dispatcher)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// sampleQueueDepth periodically exports each audit worker's backlog.
func sampleQueueDepth(ctx context.Context, d *queue.Dispatcher) {
	ticker := time.NewTicker(gaugeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for i, depth := range d.QueueDepths() {
				metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(depth))
			}
		}
	}
}
