package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental-backoffice/internal/domain/notification"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/mailer"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrChannelUnavailable leaves a job in place without spending an attempt.
var ErrChannelUnavailable = errs.New("notification channel is not configured")

const maxRetryDelay = time.Hour

type JobQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
	DeferNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.DeferNotificationJobParams) error
	ClaimRetryableNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimRetryableNotificationJobsParams) ([]sqlc.NotificationJobs, error)
}

type Mailer interface {
	Send(ctx context.Context, e mailer.Email) error
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// Event is the message body published on the bus.
type Event struct {
	JobID      uuid.UUID            `json:"job_id"`
	UserID     uuid.UUID            `json:"user_id"`
	OccurredAt time.Time            `json:"occurred_at"`
	Payload    notification.Payload `json:"payload"`
}

// Dispatcher writes every notification to the notification_jobs outbox, attempts
// delivery right away and leaves failed jobs for RetryFailed. Jobs for a channel
// with no transport stay queued until one is configured.
type Dispatcher struct {
	uow     shared.UnitOfWork
	db      shared.TxBeginner
	queries JobQueries
	mailer  Mailer
	events  EventPublisher
	clock   clock.Clock
	cfg     config.NotificationConfig
}

// NewDispatcher accepts nil mailer or events; jobs for that channel then stay queued.
func NewDispatcher(uow shared.UnitOfWork, db shared.TxBeginner, queries JobQueries, m Mailer, events EventPublisher, clk clock.Clock, cfg config.NotificationConfig) *Dispatcher {
	return &Dispatcher{
		uow:     uow,
		db:      db,
		queries: queries,
		mailer:  m,
		events:  events,
		clock:   clk,
		cfg:     cfg,
	}
}

// SendNotification queues msg on channel and, for user-facing channels, mirrors it as a
// bus event. It reports whether every job was delivered immediately.
func (d *Dispatcher) SendNotification(ctx context.Context, userID uuid.UUID, channel notification.Channel, msg notification.Message, opts notification.Options) (bool, error) {
	if _, err := notification.ParseChannel(string(channel)); err != nil {
		return false, errs.Mark(err, errs.ErrDependency)
	}
	payload := notification.NewPayload(msg, opts)

	channels := []notification.Channel{channel}
	if channel != notification.ChannelEvent && d.events != nil {
		channels = append(channels, notification.ChannelEvent)
	}

	delivered := true
	var firstErr error
	for _, ch := range channels {
		ok, err := d.dispatch(ctx, userID, ch, payload)
		if !ok {
			delivered = false
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return delivered, firstErr
}

func (d *Dispatcher) dispatch(ctx context.Context, userID uuid.UUID, channel notification.Channel, payload notification.Payload) (bool, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "marshal notification payload"), errs.ErrDependency)
	}

	now := d.clock.Now()
	jobID := uuid.New()
	err = d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return d.queries.CreateNotificationJob(ctx, db, sqlc.CreateNotificationJobParams{
			ID:        jobID,
			UserID:    userID,
			Channel:   string(channel),
			Topic:     payload.Topic,
			Payload:   raw,
			RunAt:     pgconv.TimeToPgtype(now.Add(d.retryDelay(0))),
			CreatedAt: pgconv.TimeToPgtype(now),
		})
	})
	if err != nil {
		return false, errs.Mark(infra.WrapRepoErr("failed to queue notification", err), errs.ErrDependency)
	}

	deliverErr := d.deliver(ctx, jobID, userID, channel, payload)
	if errs.Is(deliverErr, ErrChannelUnavailable) {
		slog.Debug("notification left queued", "job_id", jobID, "channel", channel)
		return false, nil
	}
	markErr := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return d.mark(ctx, db, jobID, 0, deliverErr)
	})
	if markErr != nil {
		slog.Warn("failed to update notification job", "job_id", jobID, "error", markErr.Error())
	}
	if deliverErr != nil {
		return false, errs.Mark(errs.Wrapf(deliverErr, "deliver %s notification", channel), errs.ErrDependency)
	}
	return true, nil
}

// RetryFailed redelivers due failed jobs and queued jobs that were never attempted.
// Claimed rows stay locked until the batch is marked, so concurrent workers never
// pick the same job.
func (d *Dispatcher) RetryFailed(ctx context.Context) (int, error) {
	return shared.RunInTx(ctx, d.db, func(tx sqlc.DBTX) (int, error) {
		jobs, err := d.queries.ClaimRetryableNotificationJobs(ctx, tx, sqlc.ClaimRetryableNotificationJobsParams{
			MaxAttempts: d.cfg.MaxAttempts,
			Now:         pgconv.TimeToPgtype(d.clock.Now()),
			BatchSize:   d.cfg.BatchSize,
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to claim notification jobs", err)
		}

		sent := 0
		for _, job := range jobs {
			var payload notification.Payload
			deliverErr := json.Unmarshal(job.Payload, &payload)
			if deliverErr == nil {
				deliverErr = d.deliver(ctx, job.ID, job.UserID, notification.Channel(job.Channel), payload)
			}
			switch {
			case deliverErr == nil:
				sent++
			case errs.Is(deliverErr, ErrChannelUnavailable):
				slog.Debug("notification channel still unavailable", "job_id", job.ID, "channel", job.Channel)
			default:
				slog.Warn("notification retry failed", "job_id", job.ID, "attempt", job.Attempts+1, "error", deliverErr.Error())
			}
			if err := d.mark(ctx, tx, job.ID, job.Attempts, deliverErr); err != nil {
				return sent, err
			}
		}
		return sent, nil
	})
}

func (d *Dispatcher) deliver(ctx context.Context, jobID, userID uuid.UUID, channel notification.Channel, payload notification.Payload) error {
	switch channel {
	case notification.ChannelEmail:
		if d.mailer == nil {
			return ErrChannelUnavailable
		}
		u, err := d.uow.CommandReads().UserByID(ctx, userID)
		if err != nil {
			return err
		}
		return d.mailer.Send(ctx, mailer.Email{To: u.Email().Value(), Subject: payload.Subject, Body: payload.Body})
	case notification.ChannelEvent:
		if d.events == nil {
			return ErrChannelUnavailable
		}
		return d.events.PublishJSON(ctx, payload.Topic, Event{
			JobID:      jobID,
			UserID:     userID,
			OccurredAt: d.clock.Now().UTC(),
			Payload:    payload,
		})
	default:
		// no SMS transport is wired
		return ErrChannelUnavailable
	}
}

func (d *Dispatcher) mark(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, attempts int32, deliverErr error) error {
	now := d.clock.Now()
	switch {
	case deliverErr == nil:
		return d.queries.MarkNotificationJobSent(ctx, db, sqlc.MarkNotificationJobSentParams{
			ID:        jobID,
			UpdatedAt: pgconv.TimeToPgtype(now),
		})
	case errs.Is(deliverErr, ErrChannelUnavailable):
		// rechecked hourly; the attempt count is untouched
		return d.queries.DeferNotificationJob(ctx, db, sqlc.DeferNotificationJobParams{
			ID:        jobID,
			LastError: pgconv.StringToPgtype(deliverErr.Error()),
			RunAt:     pgconv.TimeToPgtype(now.Add(maxRetryDelay)),
			UpdatedAt: pgconv.TimeToPgtype(now),
		})
	}
	return d.queries.MarkNotificationJobFailed(ctx, db, sqlc.MarkNotificationJobFailedParams{
		ID:        jobID,
		LastError: pgconv.StringToPgtype(deliverErr.Error()),
		RunAt:     pgconv.TimeToPgtype(now.Add(d.retryDelay(attempts))),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
}

// retryDelay doubles the configured interval per attempt, capped at an hour.
func (d *Dispatcher) retryDelay(attempts int32) time.Duration {
	delay := d.cfg.RetryInterval
	if delay <= 0 {
		delay = time.Minute
	}
	for i := int32(0); i < attempts && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}
