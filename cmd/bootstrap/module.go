package bootstrap

import (
	"rental-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	NotificationModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WorkerModule carries only what the scheduled jobs need.
var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.ClockModule,
	NotificationModule,
)
