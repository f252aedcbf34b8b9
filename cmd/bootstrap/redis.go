package bootstrap

import (
	"context"

	"github.com/KingCastle/Javan/internal/infra/cartstore"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewCartStore,
			fx.As(new(shared.CartStore)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewCartStore(client *redis.Client, cfg config.Config) *cartstore.RedisCartStore {
	return cartstore.NewRedisCartStore(client, cfg.Redis.CartTTL)
}
