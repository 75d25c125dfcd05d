package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"rental-booking/internal/infra/db"
	"rental-booking/internal/infra/storage"
	"rental-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the configured client storage backend. Remote backends sit
// behind a circuit breaker; every backend enforces the per-value quota.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (storage.Store, error) {
	var base storage.Store
	remote := true

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		base = storage.NewMemoryStore()
		remote = false

	case config.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping failed: %w", err)
				}
				logger.Info("redis client storage connected", "addr", cfg.Redis.Addr)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		base = storage.NewRedisStore(client, cfg.Storage.TTL)

	case config.StorageDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		base = storage.NewPostgresStore(pool)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	store := storage.Store(storage.WithQuota(base, cfg.Storage.QuotaBytes))
	if remote {
		store = storage.WithBreaker(store, storage.BreakerSettings{
			Name:             "client-storage-" + cfg.Storage.Driver,
			FailureThreshold: cfg.Storage.BreakerThreshold,
			OpenTimeout:      cfg.Storage.BreakerTimeout,
		})
	}

	logger.Info("client storage ready",
		"driver", cfg.Storage.Driver,
		"quota_bytes", cfg.Storage.QuotaBytes)
	return store, nil
}
