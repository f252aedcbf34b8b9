package bootstrap

import (
	"context"

	"github.com/KingCastle/Javan/internal/infra/notify"
	"github.com/KingCastle/Javan/internal/infra/repository"
	sqlc "github.com/KingCastle/Javan/internal/infra/sqlc/generated"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewSender,
		NewComposer,
		fx.Annotate(
			NewJobStore,
			fx.As(new(notify.JobStore)),
		),
		NewDispatcher,
		func(d *notify.Dispatcher) shared.NotificationDispatcher { return d },
	),
)

func NewSender(cfg config.Config) (notify.Sender, error) {
	return notify.NewSender(cfg.Notify)
}

func NewComposer(cfg config.Config) *notify.Composer {
	return notify.NewComposer(cfg.Notify.AdminEmails)
}

func NewJobStore(pool *pgxpool.Pool) *repository.NotificationRepository {
	return repository.NewNotificationRepository(sqlc.New(), pool)
}

func NewDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	store notify.JobStore,
	composer *notify.Composer,
	sender notify.Sender,
	m notify.Metrics,
	clk clock.Clock,
) *notify.Dispatcher {
	d := notify.NewDispatcher(store, composer, sender, m, clk, notify.OptionsFromConfig(cfg.Notify))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})

	return d
}
