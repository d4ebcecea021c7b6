package components

import (
	"rental-backoffice/internal/handler"
	"rental-backoffice/internal/handler/api"
	"rental-backoffice/internal/handler/middleware"
	"rental-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewVehicleHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, b *api.BookingHandler, v *api.VehicleHandler, a *api.AuditHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: b, Vehicle: v, Audit: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
