// Command worker retries notification jobs that failed to deliver and purges
// expired idempotency keys.
package main

import (
	"context"
	"log/slog"
	"os"

	"rental-backoffice/cmd/bootstrap"
	"rental-backoffice/internal/infra/notifier"
	"rental-backoffice/internal/infra/repository"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

func NewScheduler(lc fx.Lifecycle) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return s, nil
}

// scheduleRetries runs one batch per interval; singleton mode keeps batches from overlapping.
func scheduleRetries(s gocron.Scheduler, d *notifier.Dispatcher, cfg config.Config, logger *slog.Logger) error {
	_, err := s.NewJob(
		gocron.DurationJob(cfg.Notification.RetryInterval),
		gocron.NewTask(func(ctx context.Context) {
			n, err := d.RetryFailed(ctx)
			if err != nil {
				logger.Error("notification retry batch failed", "error", err)
				return
			}
			if n > 0 {
				logger.Info("notification jobs retried", "count", n)
			}
		}),
		gocron.WithName("notification-retry"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}

func newIdempotencyRepository(q *sqlc.Queries, db sqlc.DBTX) *repository.IdempotencyRepository {
	return repository.NewIdempotencyRepository(q, db)
}

func schedulePurge(s gocron.Scheduler, repo *repository.IdempotencyRepository, clk clock.Clock, cfg config.Config, logger *slog.Logger) error {
	_, err := s.NewJob(
		gocron.DurationJob(cfg.Notification.PurgeInterval),
		gocron.NewTask(func(ctx context.Context) {
			n, err := repo.DeleteExpired(ctx, clk.Now())
			if err != nil {
				logger.Error("idempotency key purge failed", "error", err)
				return
			}
			if n > 0 {
				logger.Info("expired idempotency keys purged", "count", n)
			}
		}),
		gocron.WithName("idempotency-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}

func main() {
	app := fx.New(
		bootstrap.WorkerModule,
		fx.Provide(NewScheduler, newIdempotencyRepository),
		fx.Invoke(scheduleRetries, schedulePurge),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
	}
}
