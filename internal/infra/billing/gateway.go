package billing

import (
	"log/slog"

	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"
)

const (
	DriverFake   = "fake"
	DriverStripe = "stripe"
)

func NewGateway(cfg config.BillingConfig) (shared.BillingGateway, error) {
	switch cfg.Driver {
	case DriverStripe:
		return NewStripeGateway(cfg.StripeSecretKey)
	case DriverFake, "":
		slog.Warn("using in-memory billing gateway; no real charges are made")
		return NewFakeGateway(), nil
	default:
		return nil, errs.Newf("unknown billing driver %q", cfg.Driver)
	}
}
