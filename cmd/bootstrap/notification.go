package bootstrap

import (
	"context"
	"log/slog"

	"rental-backoffice/internal/infra/mailer"
	"rental-backoffice/internal/infra/messaging"
	"rental-backoffice/internal/infra/notifier"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// NotificationModule is shared by the API and the retry worker.
var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewMailer,
		NewEventPublisher,
		NewDispatcher,
	),
)

// NewMailer returns a nil interface when SMTP is not configured.
func NewMailer(cfg config.Config) (notifier.Mailer, error) {
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP_HOST not set, email notifications stay queued")
		return nil, nil
	}
	m, err := mailer.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewEventPublisher returns a nil interface when AMQP is not configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (notifier.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL not set, domain events are not published")
		return nil, nil
	}
	p, err := messaging.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func NewDispatcher(uow shared.UnitOfWork, pool *pgxpool.Pool, q *sqlc.Queries, m notifier.Mailer, events notifier.EventPublisher, clk clock.Clock, cfg config.Config) *notifier.Dispatcher {
	return notifier.NewDispatcher(uow, pool, q, m, events, clk, cfg.Notification)
}
