package bootstrap

import (
	"log/slog"

	"github.com/KingCastle/Javan/internal/infra/billing"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		NewBillingGateway,
	),
)

func NewBillingGateway(cfg config.Config, logger *slog.Logger) (shared.BillingGateway, error) {
	gateway, err := billing.NewGateway(cfg.Billing)
	if err != nil {
		return nil, err
	}
	logger.Info("決済ゲートウェイを初期化しました", "driver", cfg.Billing.Driver)
	return gateway, nil
}
