package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/redis/stockcache"
	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisURL is optional; without it the stock cache is disabled.
	RedisURL      string
	StockCacheTTL time.Duration

	OperatorToken string
	LogLevel      string

	QueueTaskTimeout time.Duration
	CommitTimeout    time.Duration
	QueueRetryDelay  time.Duration
	QueueMaxAttempts int
	QueueIdleDelay   time.Duration

	ResyncSchedule   string
	LowStockSchedule string
}

// LoadConfig reads .env when present, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	queue := opqueue.DefaultConfig()
	p := &envParser{}
	cfg := Config{
		HTTPPort:   stringVar("HTTP_PORT", "8080"),
		DBHost:     stringVar("DB_HOST", "localhost"),
		DBPort:     stringVar("DB_PORT", "5432"),
		DBUser:     stringVar("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     stringVar("DB_NAME", "fulfillment"),
		DBSslMode:  stringVar("DB_SSLMODE", "disable"),

		RedisURL:      os.Getenv("REDIS_URL"),
		StockCacheTTL: p.duration("STOCK_CACHE_TTL", stockcache.DefaultTTL),

		OperatorToken: os.Getenv("OPERATOR_TOKEN"),
		LogLevel:      stringVar("LOG_LEVEL", "info"),

		QueueTaskTimeout: p.duration("QUEUE_TASK_TIMEOUT", queue.TaskTimeout),
		CommitTimeout:    p.duration("QUEUE_COMMIT_TIMEOUT", commands.DefaultCommitTimeout),
		QueueRetryDelay:  p.duration("QUEUE_RETRY_DELAY", queue.RetryDelay),
		QueueMaxAttempts: p.integer("QUEUE_MAX_ATTEMPTS", queue.MaxAttempts),
		QueueIdleDelay:   p.duration("QUEUE_IDLE_DELAY", queue.IdleDelay),

		ResyncSchedule:   stringVar("RESYNC_SCHEDULE", jobs.DefaultResyncSchedule),
		LowStockSchedule: stringVar("LOW_STOCK_SCHEDULE", jobs.DefaultLowStockSchedule),
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// QueueConfig converts the queue settings for opqueue.New.
func (c Config) QueueConfig() opqueue.Config {
	return opqueue.Config{
		TaskTimeout: c.QueueTaskTimeout,
		RetryDelay:  c.QueueRetryDelay,
		MaxAttempts: c.QueueMaxAttempts,
		IdleDelay:   c.QueueIdleDelay,
	}
}

func stringVar(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envParser collects every malformed variable so they are reported together.
type envParser struct {
	errs []error
}

func (p *envParser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func (p *envParser) integer(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}
