package components

import (
	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/jwt"
	"rental-backoffice/internal/usecase"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/queries"
	"rental-backoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	ClockModule,
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var ClockModule = fx.Provide(clock.NewRealClock)

var usecaseBaseOption = fx.Provide(
	shared.NewAvailabilityChecker,
	NewBookingPolicy,
)

func NewBookingPolicy(cfg config.Config) commands.BookingPolicy {
	return commands.BookingPolicy{
		Location:        cfg.Booking.Location(),
		MaxRentalDays:   cfg.Booking.MaxRentalDuration,
		Refund:          booking.NewNoticeRefundPolicy(cfg.Booking.FullRefundNotice),
		DefaultCurrency: cfg.Booking.DefaultCurrency,
		IdempotencyTTL:  cfg.Booking.IdempotencyTTL,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewVehicleCommands,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, cache commands.RevocationCache, auditLogger commands.AuditLogger, clk clock.Clock, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, cache, cfg.Redis.RevocationTTL, auditLogger, clk)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewVehicleQueries,
		queries.NewAuditQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
