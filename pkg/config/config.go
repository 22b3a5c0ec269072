package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/inventory-tracker/pkg/database"
)

// Config holds all service configuration
type Config struct {
	ServiceName     string
	Environment     string
	LogLevel        string
	HTTPPort        string
	ShutdownTimeout time.Duration

	DB database.Config

	RedisAddr      string
	RedisPassword  string
	ReportCacheTTL time.Duration

	// RateLimitRequests per RateLimitWindow per caller. Needs Redis; 0 disables it.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	KafkaBrokers []string
	KafkaGroupID string

	JWTSecret string

	TracingEnabled bool
	JaegerEndpoint string

	WorkerCount     int
	WorkerQueueSize int
}

// IsDevelopment reports whether pretty logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// KafkaEnabled reports whether any broker is configured
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads an optional .env file and then the process environment
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return &Config{
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "inventory-service"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getEnv("HTTP_PORT", "8082"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DB: database.Config{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "inventorydb"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ReportCacheTTL:    getDuration("REPORT_CACHE_TTL", time.Minute),
		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
		KafkaBrokers:      getList("KAFKA_BROKERS"),
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "inventory-service"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TracingEnabled:    getBool("TRACING_ENABLED", false),
		JaegerEndpoint:    getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		WorkerCount:       getInt("WORKER_COUNT", 4),
		WorkerQueueSize:   getInt("WORKER_QUEUE_SIZE", 256),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
