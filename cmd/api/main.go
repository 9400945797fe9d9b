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

	"github.com/laborercms/laborer-api/internal/api"
	"github.com/laborercms/laborer-api/internal/infrastructure/config"
	mongodb "github.com/laborercms/laborer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/laborercms/laborer-api/internal/infrastructure/db/redis"
	"github.com/laborercms/laborer-api/internal/infrastructure/queue"
	"github.com/laborercms/laborer-api/internal/infrastructure/storage/disk"
	"github.com/laborercms/laborer-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Laborer CMS API
// @version      1.0
// @description  Personnel-record management API: laborer CRUD with profile picture upload.
// @BasePath     /
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	laborerRepo := mongodb.NewLaborerRepository(db)
	if err := laborerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	if cfg.SeedDemo {
		if err := mongodb.SeedDemo(ctx, laborerRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo seed applied")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Picture storage and cleanup ---
	pictures := disk.NewPictureStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	cleanup := redisdb.NewCleanupQueue(rdb)

	janitor := queue.NewJanitor(cleanup, pictures, 0, log)
	janitor.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, pictures, cleanup, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
