package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	dbpkg "github.com/BruksfildServices01/ponto-inteligente/internal/db"
	"github.com/BruksfildServices01/ponto-inteligente/internal/infra/cache"
	"github.com/BruksfildServices01/ponto-inteligente/internal/routes"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}()

	var entryCache service.TimeEntryCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			// segue sem cache; o serviço de lançamentos vai direto ao banco
			logger.Warn("redis unavailable, time entry cache disabled",
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
		} else {
			entryCache = cache.NewTimeEntryCache(client, cfg.CacheTTL)
		}
		cancel()
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:         db,
		Config:     cfg,
		EntryCache: entryCache,
		Audit:      dispatcher,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	// eventos já enfileirados são gravados antes de fechar o banco
	dispatcher.Close()
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
