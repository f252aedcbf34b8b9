package components

import (
	"github.com/KingCastle/Javan/internal/domain/booking"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/usecase"
	"github.com/KingCastle/Javan/internal/usecase/commands"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewRandomTicketGenerator,
		fx.As(new(booking.TicketGenerator)),
	),
	commands.NewBookingSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
