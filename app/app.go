package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"Gin_redis_lending_tracker/config"
	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/lending"
	"Gin_redis_lending_tracker/logger"
	"Gin_redis_lending_tracker/metrics"
	"Gin_redis_lending_tracker/report"
	"Gin_redis_lending_tracker/session"
	"Gin_redis_lending_tracker/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Short aliases for handlers.
type Ctx = gin.Context
type H = gin.H

// App holds every long-lived dependency.
type App struct {
	Router   *gin.Engine
	Store    store.Store
	RDB      *redis.Client // nil unless redis is configured
	Repo     *db.Repo
	Engine   *lending.Engine
	Reports  *report.Service
	Carts    session.CartStore
	Registry *prometheus.Registry
	Limiter  *RateLimiter
	Log      *slog.Logger
	Config   config.Config
}

func MustNew(cfg config.Config) *App {
	a, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	return a
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	lg := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	// --- Redis (optional) ---
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: cfg.RedisDB})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	// --- Store ---
	st, err := OpenStore(ctx, cfg, rdb)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}
	a, err := Assemble(ctx, cfg, st, rdb, lg)
	if err != nil {
		_ = st.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, err
	}
	lg.Info("store ready", slog.String("driver", string(st.Driver())), slog.String("prefix", cfg.StorePrefix))
	return a, nil
}

// Assemble builds the App around an already opened store. Tests use it with a MemoryStore.
func Assemble(ctx context.Context, cfg config.Config, st store.Store, rdb *redis.Client, lg *slog.Logger) (*App, error) {
	if lg == nil {
		lg = slog.Default()
	}
	repo, err := db.NewRepo(ctx, st, db.Options{
		Namespace:   store.Namespace(cfg.StorePrefix),
		SeedOnEmpty: cfg.SeedOnEmpty,
	})
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	engine := lending.NewEngine(repo, lending.WithRecorder(collector), lending.WithLogger(lg))

	var carts session.CartStore = session.NewMemoryCartStore(cfg.CartTTL)
	if rdb != nil {
		carts = session.NewRedisCartStore(rdb, cfg.CartTTL)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(lg))
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:   r,
		Store:    st,
		RDB:      rdb,
		Repo:     repo,
		Engine:   engine,
		Reports:  report.NewService(engine, nil),
		Carts:    carts,
		Registry: reg,
		Limiter:  NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Log:      lg,
		Config:   cfg,
	}, nil
}

// OpenStore picks the store driver named by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg config.Config, rdb *redis.Client) (store.Store, error) {
	switch store.Driver(cfg.StoreDriver) {
	case store.DriverMemory, "":
		return store.NewMemoryStore(), nil
	case store.DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis store needs REDIS_ADDR")
		}
		return store.NewRedisStore(rdb), nil
	case store.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres store needs DATABASE_URL or DB_HOST")
		}
		return store.OpenPostgres(cfg.DatabaseURL)
	case store.DriverSQLite:
		return store.OpenSQLite(cfg.SQLitePath)
	case store.DriverS3:
		return store.OpenS3(ctx, store.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			PathStyle:       cfg.S3PathStyle,
		})
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func (a *App) Close() {
	_ = a.Store.Close()
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}
