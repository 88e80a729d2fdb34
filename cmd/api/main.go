package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/micropost/content-api/internal/api"
	"github.com/micropost/content-api/internal/infrastructure/config"
	redisdb "github.com/micropost/content-api/internal/infrastructure/db/redis"
	"github.com/micropost/content-api/internal/infrastructure/db/sqlite"
	"github.com/micropost/content-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	opts := api.Options{
		DB:            db,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		CacheCapacity: cfg.Cache.Capacity,
		CacheTTL:      cfg.Cache.TTL,
		Logger:        log,
	}

	if cfg.Cache.Backend == "redis" {
		rdb, err := redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		opts.Redis = rdb
	}

	e := api.NewRouter(opts)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("cache", cfg.Cache.Backend).Msg("micropost api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
