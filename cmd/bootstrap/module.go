package bootstrap

import (
	"vinyl-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	BackendModule,
	components.CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
)
