package components

import (
	"cancha-client/internal/pkg/clock"
	"cancha-client/internal/pkg/token"
	"cancha-client/internal/session"
	"cancha-client/internal/uistate"
	"cancha-client/internal/usecase/commands"
	"cancha-client/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	token.NewInspector,
	uistate.NewPublisher,
	fx.Annotate(
		func(s *session.Store) *session.Store { return s },
		fx.As(new(commands.SessionStore)),
		fx.As(new(queries.SessionReader)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVenueQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
	),
)
