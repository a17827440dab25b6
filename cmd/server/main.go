package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dealbridge/backend/config"
	httpDelivery "github.com/dealbridge/backend/internal/delivery/http"
	"github.com/dealbridge/backend/internal/infrastructure/cache"
	"github.com/dealbridge/backend/internal/infrastructure/store"
	"github.com/dealbridge/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting dealbridge backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("database", cfg.Database.Path))

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	matchCache := cache.NewMemoryCache()
	defer matchCache.Close()

	dealService := usecase.NewDealService(
		store.NewDealRepository(db, logger),
		store.NewCompanyProfileRepository(db, logger),
		store.NewBuyerRepository(db, logger),
		matchCache,
		usecase.DealServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MinMatchPercentage: cfg.Matching.MinMatchPercentage,
		},
		logger,
	)

	logger.Info("matching configured",
		zap.Int("minMatchPercentage", cfg.Matching.MinMatchPercentage),
		zap.Duration("cacheTTL", cfg.Cache.TTL))

	handler := httpDelivery.NewHandler(dealService)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
