package components

import (
	"cancha-client/internal/gateway"
	"cancha-client/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		gateway.NewClient,
		NewVenuesAPI,
		NewAvailabilityAPI,
		NewUsersAPI,
		NewReservationsAPI,
	),
)

// One API per remote service, all over the shared client. The base URLs are
// the only thing that differs.

func NewVenuesAPI(client *gateway.Client, cfg config.Config) *gateway.VenuesAPI {
	return gateway.NewVenuesAPI(client, cfg.Services.VenuesURL)
}

func NewAvailabilityAPI(client *gateway.Client, cfg config.Config) *gateway.AvailabilityAPI {
	return gateway.NewAvailabilityAPI(client, cfg.Services.AvailabilityURL)
}

func NewUsersAPI(client *gateway.Client, cfg config.Config) *gateway.UsersAPI {
	return gateway.NewUsersAPI(client, cfg.Services.UsersURL)
}

func NewReservationsAPI(client *gateway.Client, cfg config.Config) *gateway.ReservationsAPI {
	return gateway.NewReservationsAPI(client, cfg.Services.ReservationsURL)
}
