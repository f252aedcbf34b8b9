package bootstrap

import (
	"time"

	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Tokens are issued by the sign-in service; this process only verifies them.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration), nil
}
