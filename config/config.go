package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"Gin_redis_lending_tracker/store"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. A missing file is fine;
// variables already set win over the file.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env", slog.Any("error", err))
	}
}

// Config is read once at start-up.
type Config struct {
	Port      string
	WebOrigin string
	LogLevel  string

	// Store
	StoreDriver string // memory | redis | postgres | sqlite | s3
	StorePrefix string
	SeedOnEmpty bool

	// Redis: store driver and cart sessions
	RedisAddr string
	RedisPwd  string
	RedisDB   int

	// Postgres
	DatabaseURL string

	SQLitePath string

	// S3
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
	S3AccessKey string
	S3SecretKey string

	CartTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port:           get("PORT", "3001"),
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:5173"),
		LogLevel:       get("LOG_LEVEL", "info"),
		StoreDriver:    strings.ToLower(get("STORE_DRIVER", "memory")),
		StorePrefix:    get("STORE_PREFIX", "yeumeasy"),
		SeedOnEmpty:    getBool("SEED_ON_EMPTY", true),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     get("SQLITE_PATH", "data/lending.db"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       get("S3_REGION", "us-east-1"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3PathStyle:    getBool("S3_PATH_STYLE", false),
		S3AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		CartTTL:        getDuration("CART_TTL", 30*time.Minute),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
	}
	if cfg.StoreDriver == "redis" && cfg.RedisAddr == "" {
		cfg.RedisAddr = "127.0.0.1:6379"
	}
	if cfg.DatabaseURL == "" && os.Getenv("DB_HOST") != "" {
		cfg.DatabaseURL = postgresDSN()
	}
	return cfg
}

func postgresDSN() string {
	return store.PostgresDSN(os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), get("DB_PORT", "5432"))
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	i, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return i
}

func getFloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

func getDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}
