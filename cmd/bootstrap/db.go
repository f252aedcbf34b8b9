package bootstrap

import (
	"context"
	"log/slog"

	"github.com/KingCastle/Javan/internal/infra/db"
	"github.com/KingCastle/Javan/internal/infra/migration"
	"github.com/KingCastle/Javan/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := migration.Up(pool); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("マイグレーションを適用しました")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
