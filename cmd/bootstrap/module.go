package bootstrap

import (
	"parkgate/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	StorageModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
