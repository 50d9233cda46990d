package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lamare/creator-studio/internal/api"
	"github.com/lamare/creator-studio/internal/api/metrics"
	"github.com/lamare/creator-studio/internal/core/service"
	"github.com/lamare/creator-studio/internal/infrastructure/config"
	mongodb "github.com/lamare/creator-studio/internal/infrastructure/db/mongo"
	redisdb "github.com/lamare/creator-studio/internal/infrastructure/db/redis"
	"github.com/lamare/creator-studio/internal/infrastructure/genai"
	"github.com/lamare/creator-studio/internal/infrastructure/media"
	"github.com/lamare/creator-studio/internal/infrastructure/queue"
	"github.com/lamare/creator-studio/pkg/logger"
)

func main() {
	// Load .env in dev only; production injects env vars through infra.
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Dependencies ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	kv := redisdb.NewKVStore(rdb)
	codes := redisdb.NewCodeStore(rdb)
	products := mongodb.NewProductRepository(db)
	generator := genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		BaseURL: cfg.GenAI.BaseURL,
		Model:   cfg.GenAI.Model,
	})
	capture := media.NewDeviceCapture(cfg.CameraDevice)

	// --- Services ---
	sessions := service.NewSessionManager(kv, codes, cfg.SessionSecret, log)
	nav := service.NewNavigator(sessions, log)
	tasks := service.NewTaskStore(kv, log)
	workspace := service.NewWorkspace(log)
	catalog := service.NewCatalogService(products, log)
	studio := service.NewStudioService(generator, log)
	accounts := service.NewAccountService(capture, log)

	// Replay persisted state before accepting traffic.
	replaySession(ctx, sessions, nav)
	tasks.Restore(ctx)
	if err := catalog.EnsureSeed(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog seeding failed, samples remain available")
	}

	dispatcher := queue.NewDispatcher(cfg.Workers, studio, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Services{
		Sessions:  sessions,
		Navigator: nav,
		Tasks:     tasks,
		Workspace: workspace,
		Catalog:   catalog,
		Studio:    studio,
		Accounts:  accounts,
		Queue:     dispatcher,
	}, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

// replaySession rebuilds the session and view from the persisted record so
// a restart lands the user where they left off.
func replaySession(ctx context.Context, sessions *service.SessionManager, nav *service.Navigator) {
	nav.Restore(ctx)
	if sessions.Authenticated() {
		metrics.SessionEventsTotal.WithLabelValues("restored").Inc()
	}
}
