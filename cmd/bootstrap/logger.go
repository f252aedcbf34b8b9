package bootstrap

import (
	"log/slog"

	"github.com/KingCastle/Javan/internal/handler/middleware"
	"github.com/KingCastle/Javan/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
