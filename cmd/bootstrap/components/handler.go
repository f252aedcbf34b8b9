package components

import (
	"github.com/KingCastle/Javan/internal/handler"
	"github.com/KingCastle/Javan/internal/handler/api"
	"github.com/KingCastle/Javan/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewCartHandler,
		api.NewBookingHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
