package components

import (
	"cancha-client/internal/infra/repository"
	"cancha-client/internal/usecase/commands"
	"cancha-client/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewVenueRepository,
			fx.As(new(queries.VenueReader)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(queries.AvailabilityReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserGateway)),
			fx.As(new(commands.UserAdminGateway)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(queries.ReservationReader)),
		),
	),
)
