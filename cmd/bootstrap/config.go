package bootstrap

import (
	"log/slog"

	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadValidatedConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

func LoadValidatedConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errs.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"billing_driver", cfg.Billing.Driver,
		"billing_currency", cfg.Billing.Currency,
		"notify_driver", cfg.Notify.Driver,
		"notify_workers", cfg.Notify.Workers,
		"booking_timezone", cfg.Booking.TimeZone,
		"cart_ttl", cfg.Redis.CartTTL)
}
