package bootstrap

import (
	"rental-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	SessionModule,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
