package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"courtmate-gateway/internal/infra/sessionstore"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 2 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRevocationStore,
	),
)

// NewRevocationStore uses Redis when REDIS_ADDR is set and reachable, and an
// in-process store otherwise. The in-process store only covers a single replica.
func NewRevocationStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) sessionstore.RevocationStore {
	if cfg.Redis.Addr == "" {
		logger.Info("session revocation store: memory")
		return sessionstore.NewMemoryStore(clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to memory revocation store",
			"addr", cfg.Redis.Addr,
			"error", err)
		_ = client.Close()
		return sessionstore.NewMemoryStore(clk)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("session revocation store: redis", "addr", cfg.Redis.Addr)
	return sessionstore.NewRedisStore(client)
}
