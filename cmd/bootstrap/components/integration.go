package components

import (
	"context"

	"rental-backoffice/internal/infra/auditlog"
	"rental-backoffice/internal/infra/cache"
	"rental-backoffice/internal/infra/notifier"
	"rental-backoffice/internal/infra/payment"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/usecase/commands"
	"rental-backoffice/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// IntegrationModule binds the external adapters to the command ports.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRevocationCache,
			fx.As(new(commands.RevocationCache)),
		),
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		payment.NewStripeClient,
		fx.Annotate(
			payment.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewAuditLogger,
			fx.As(new(commands.AuditLogger)),
		),
		fx.Annotate(
			func(d *notifier.Dispatcher) *notifier.Dispatcher { return d },
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewAuditLogger(uow shared.UnitOfWork, q *sqlc.Queries, clk clock.Clock) *auditlog.Logger {
	return auditlog.NewLogger(uow, q, clk)
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewRevocationCache(rdb *redis.Client, cfg config.Config) *cache.TokenRevocationCache {
	return cache.NewTokenRevocationCache(rdb, cfg.Redis)
}
