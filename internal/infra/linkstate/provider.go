package linkstate

import (
	"context"
	"log/slog"

	"shelf/config"
	"shelf/internal/domain/lifecycle"
	"shelf/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the link attempt store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLinkAttemptRepository picks the Redis store when redis.addr is set and the
// in-process store otherwise.
func NewLinkAttemptRepository(params Params) repository.LinkAttemptRepository {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Warn("Redis not configured, keeping link attempts in memory")

		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			logger.Info("Redis connection established",
				slog.String("addr", cfg.Addr),
				slog.Int("db", cfg.DB),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Redis connection")

			return client.Close()
		},
	})

	return NewRedisStore(client, cfg.KeyPrefix)
}

// Module provides the link attempt store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLinkAttemptRepository),
)
