package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TableAvailability/internal/config"
	"github.com/m04kA/SMC-TableAvailability/internal/infra/cache"
	closureRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/closure"
	reservationRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/settings"
	tableRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/table"
	findSlotsUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

// app общие зависимости команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db   *sql.DB
	exec dbmetrics.DBExecutor

	redis *redis.Client
	cache cache.Cache

	stopMetricsCh chan struct{}
}

// openDB подключается к Postgres и настраивает пул соединений
func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// newApp читает конфиг и поднимает БД; метрики и кеш включаются по конфигу
// Для CLI команд (withCache=false) кеш не нужен, данные читаются один раз
func newApp(ctx context.Context, configPath string, log *logger.Logger, withCache bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if log == nil {
		if log, err = logger.New(cfg.Logs.File, cfg.Logs.Level); err != nil {
			return nil, err
		}
	}

	a := &app{cfg: cfg, log: log, stopMetricsCh: make(chan struct{})}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
	}

	a.db, err = openDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	a.exec = a.db
	if a.metrics != nil {
		a.exec = dbmetrics.WrapWithDefault(a.db, a.metrics, a.stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	if withCache && cfg.Cache.Enabled {
		if err := a.initCache(ctx); err != nil {
			a.close()
			return nil, err
		}
	}

	return a, nil
}

func (a *app) initCache(ctx context.Context) error {
	var inner cache.Cache

	switch a.cfg.Cache.Driver {
	case "redis":
		client, err := cache.NewRedisClient(ctx, cache.RedisOptions{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		a.redis = client
		inner = cache.NewRedisCache(client, a.cfg.Cache.Prefix)
		a.log.Info("Redis cache enabled (addr=%s, prefix=%s)", a.cfg.Redis.Addr, a.cfg.Cache.Prefix)
	default:
		inner = cache.NewMemoryCache(nil)
		a.log.Info("In-memory cache enabled")
	}

	a.cache = cache.NewInstrumented(inner, a.metrics)
	return nil
}

func (a *app) cacheTTL() time.Duration {
	return time.Duration(a.cfg.Cache.TTLSeconds) * time.Second
}

// findSlots собирает движок доступности поверх репозиториев
func (a *app) findSlots() *findSlotsUC.UseCase {
	loader := findSlotsUC.NewDataLoader(
		roomRepo.NewRepository(a.exec),
		tableRepo.NewRepository(a.exec),
		closureRepo.NewRepository(a.exec),
		reservationRepo.NewRepository(a.exec),
		a.cache,
		a.cacheTTL(),
		a.log,
	)

	return findSlotsUC.NewUseCase(
		loader,
		settingsRepo.NewRepository(a.exec),
		a.metrics,
		a.log,
	)
}

func (a *app) close() {
	close(a.stopMetricsCh)
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
	a.log.Close()
}
