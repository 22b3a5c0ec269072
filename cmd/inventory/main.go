package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"

	_ "github.com/tair/inventory-tracker/docs"
	alog "github.com/tair/inventory-tracker/internal/activitylog/domain"
	cdomain "github.com/tair/inventory-tracker/internal/category/domain"
	"github.com/tair/inventory-tracker/internal/inventory"
	httpDelivery "github.com/tair/inventory-tracker/internal/inventory/delivery/http"
	"github.com/tair/inventory-tracker/internal/notify"
	pdomain "github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/report/cache"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/database"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/metrics"
	"github.com/tair/inventory-tracker/pkg/tracing"
	"github.com/tair/inventory-tracker/pkg/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting inventory service")

	// Tracing
	var tp *sdktrace.TracerProvider
	if cfg.TracingEnabled {
		var err error
		tp, err = tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without export")
		}
	}
	if tp == nil {
		tracing.InstallPropagator()
	}

	// Database
	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.AutoMigrate(&pdomain.Product{}, &cdomain.Category{}, &alog.ActivityLog{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	// Report cache. Redis is optional; without it every report is computed.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := cache.NewRedisClient(startupCtx, cfg.RedisAddr, cfg.RedisPassword)
	cancelStartup()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, report caching and rate limiting disabled")
		redisClient = nil
	}
	reportCache := cache.NewRedisCache(redisClient, cfg.ReportCacheTTL)

	// Metrics
	httpMetrics := metrics.NewHTTP(prometheus.DefaultRegisterer)
	inventoryMetrics := metrics.NewInventory(prometheus.DefaultRegisterer)

	// Background work
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, func(string) {
		inventoryMetrics.TaskDropped()
	})
	pool.Start()

	// Kafka publisher. The interface stays nil when no broker is configured.
	var publisher notify.EventPublisher
	var kafkaPublisher *kafka.Publisher
	if cfg.KafkaEnabled() {
		kafkaPublisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, stock events disabled")
		} else {
			publisher = kafkaPublisher
		}
	}

	// Initialize handlers with Wire DI
	handlers, err := inventory.InitializeHandlers(db, pool, publisher, reportCache, httpMetrics, inventoryMetrics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	// Kafka consumer for restock requests
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	var consumer *kafka.Consumer
	if cfg.KafkaEnabled() {
		consumer, err = kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicRestock})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, restock requests disabled")
		} else {
			consumer.RegisterHandler(kafka.EventTypeRestockRequested, handlers.Restock.HandleEvent)
			if err := consumer.Start(consumerCtx); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
			}
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(cfg, handlers, db, redisClient),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	stopConsumer()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka consumer")
		}
	}

	// Drain queued events before the publisher goes away
	if err := pool.Shutdown(ctx); err != nil {
		logger.Logger.Warn().Err(err).Msg("Background tasks abandoned at shutdown")
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka publisher")
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := tracing.Shutdown(ctx, tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to flush traces")
	}
	if err := database.Close(db); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close database")
	}

	logger.Logger.Info().Msg("Server stopped")
}

func newRouter(cfg *config.Config, handlers *inventory.Handlers, db *gorm.DB, redisClient *redis.Client) http.Handler {
	optional := map[string]httpDelivery.Pinger{}
	if redisClient != nil {
		optional["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	middleware := httpDelivery.DefaultMiddlewareConfig(
		auth.NewTokenValidator(cfg.JWTSecret),
		httpDelivery.NewRateLimiter(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow),
	)

	return httpDelivery.NewRouter(httpDelivery.RouterConfig{
		Middleware: middleware,
		Database: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		Optional: optional,
		Metrics:  promhttp.Handler(),
		Swagger:  httpSwagger.WrapHandler,
	},
		handlers.Products,
		handlers.Categories,
		handlers.ActivityLogs,
		handlers.Reports,
	)
}
