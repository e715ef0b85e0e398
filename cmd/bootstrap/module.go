package bootstrap

import (
	"cancha-client/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	HTTPModule,
	RedisModule,
	SessionModule,
	components.GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
)
