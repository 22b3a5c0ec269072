package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	cdomain "github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/internal/inventory"
	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/report/cache"
	"github.com/tair/inventory-tracker/internal/seed"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/database"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/worker"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.ServiceName+"-seed", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()

	if err := db.AutoMigrate(&pdomain.Product{}, &cdomain.Category{}, &alog.ActivityLog{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Drop any cached report so the next read sees the seeded rows
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, cached report left as is")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	pool := worker.NewPool(1, 64, nil)
	pool.Start()

	registry := prometheus.NewRegistry()
	handlers, err := inventory.InitializeHandlers(
		db,
		pool,
		nil,
		cache.NewRedisCache(redisClient, cfg.ReportCacheTTL),
		metrics.NewHTTP(registry),
		metrics.NewInventory(registry),
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	res, err := seed.NewSeeder(handlers.CategoryCommands.Create, handlers.ProductCommands.Create).Run(ctx)
	if shutdownErr := pool.Shutdown(ctx); shutdownErr != nil {
		logger.Logger.Warn().Err(shutdownErr).Msg("Background tasks abandoned")
	}
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Seeding failed")
	}

	total, err := handlers.ProductRepository.Count(ctx)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to count products")
	}

	logger.Logger.Info().
		Int("categories_created", res.CategoriesCreated).
		Int("categories_skipped", res.CategoriesSkipped).
		Int("products_created", res.ProductsCreated).
		Int("products_skipped", res.ProductsSkipped).
		Int64("products_total", total).
		Msg("Seed complete")
}
