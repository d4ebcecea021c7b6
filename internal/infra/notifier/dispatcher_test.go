//go:build unit

package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rental-backoffice/internal/domain/notification"
	"rental-backoffice/internal/infra/mailer"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/pgconv"
	"rental-backoffice/tests/common/builder"
	sharedmock "rental-backoffice/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

type fakeJobs struct {
	created  []sqlc.CreateNotificationJobParams
	sent     []uuid.UUID
	failed   []sqlc.MarkNotificationJobFailedParams
	deferred []sqlc.DeferNotificationJobParams
	claim    []sqlc.NotificationJobs
	err      error
}

func (f *fakeJobs) CreateNotificationJob(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, arg)
	return nil
}

func (f *fakeJobs) MarkNotificationJobSent(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error {
	f.sent = append(f.sent, arg.ID)
	return nil
}

func (f *fakeJobs) MarkNotificationJobFailed(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error {
	f.failed = append(f.failed, arg)
	return nil
}

func (f *fakeJobs) DeferNotificationJob(_ context.Context, _ sqlc.DBTX, arg sqlc.DeferNotificationJobParams) error {
	f.deferred = append(f.deferred, arg)
	return nil
}

func (f *fakeJobs) ClaimRetryableNotificationJobs(_ context.Context, _ sqlc.DBTX, _ sqlc.ClaimRetryableNotificationJobsParams) ([]sqlc.NotificationJobs, error) {
	return f.claim, f.err
}

type fakeMailer struct {
	sent []mailer.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, e mailer.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

type published struct {
	key   string
	event Event
}

type fakePublisher struct {
	events []published
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{key: key, event: v.(Event)})
	return nil
}

// fakeTx satisfies pgx.Tx for RunInTx; only Commit and Rollback are called.
type fakeTx struct {
	pgx.Tx
	committed bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error { return pgx.ErrTxClosed }

type fakeBeginner struct{ tx *fakeTx }

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) { return b.tx, nil }

type fixture struct {
	dispatcher *Dispatcher
	jobs       *fakeJobs
	mail       *fakeMailer
	events     *fakePublisher
	tx         *fakeTx
}

func newFixture(t *testing.T, withEvents bool) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	u, err := builder.NewUserBuilder().WithEmail("rider@example.com").BuildDomain()
	require.NoError(t, err)
	reads := sharedmock.NewMockCommandReads(ctrl)
	reads.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(u, nil).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().CommandReads().Return(reads).AnyTimes()
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()

	f := fixture{jobs: &fakeJobs{}, mail: &fakeMailer{}, tx: &fakeTx{}}
	var pub EventPublisher
	if withEvents {
		f.events = &fakePublisher{}
		pub = f.events
	}
	cfg := config.NotificationConfig{RetryInterval: time.Minute, MaxAttempts: 5, BatchSize: 10}
	f.dispatcher = NewDispatcher(uow, fakeBeginner{tx: f.tx}, f.jobs, f.mail, pub, clock.NewMockClock(fixedNow), cfg)
	return f
}

var confirmed = notification.Message{
	Topic:   notification.TopicBookingConfirmed,
	Subject: "Booking confirmed",
	Body:    "See you on June 1st",
}

func TestDispatcher_SendNotification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("email is queued, delivered and mirrored as an event", func(t *testing.T) {
		f := newFixture(t, true)
		opts := notification.Options{Data: map[string]any{"booking_id": "b-1"}}

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelEmail, confirmed, opts)

		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, f.jobs.created, 2)
		assert.Equal(t, "email", f.jobs.created[0].Channel)
		assert.Equal(t, "event", f.jobs.created[1].Channel)
		assert.Equal(t, notification.TopicBookingConfirmed, f.jobs.created[0].Topic)
		assert.Equal(t, fixedNow, pgconv.TimeFromPgtype(f.jobs.created[0].CreatedAt))
		assert.Equal(t, fixedNow.Add(time.Minute), pgconv.TimeFromPgtype(f.jobs.created[0].RunAt))

		var stored notification.Payload
		require.NoError(t, json.Unmarshal(f.jobs.created[0].Payload, &stored))
		assert.Equal(t, "b-1", stored.Data["booking_id"])

		require.Len(t, f.mail.sent, 1)
		assert.Equal(t, "rider@example.com", f.mail.sent[0].To)
		assert.Equal(t, "Booking confirmed", f.mail.sent[0].Subject)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, notification.TopicBookingConfirmed, f.events.events[0].key)
		assert.Equal(t, userID, f.events.events[0].event.UserID)
		assert.Equal(t, f.jobs.created[1].ID, f.events.events[0].event.JobID)

		assert.Len(t, f.jobs.sent, 2)
		assert.Empty(t, f.jobs.failed)
	})

	t.Run("no event mirror without a publisher", func(t *testing.T) {
		f := newFixture(t, false)

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelEmail, confirmed, notification.Options{})

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Len(t, f.jobs.created, 1)
	})

	t.Run("mail failure leaves a failed job for retry", func(t *testing.T) {
		f := newFixture(t, false)
		f.mail.err = assert.AnError

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelEmail, confirmed, notification.Options{})

		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errs.Is(err, errs.ErrDependency))
		require.Len(t, f.jobs.failed, 1)
		assert.Equal(t, fixedNow.Add(time.Minute), pgconv.TimeFromPgtype(f.jobs.failed[0].RunAt))
		assert.Contains(t, f.jobs.failed[0].LastError.String, assert.AnError.Error())
	})

	t.Run("sms has no transport and stays queued", func(t *testing.T) {
		f := newFixture(t, false)

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelSMS, confirmed, notification.Options{})

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Len(t, f.jobs.created, 1)
		assert.Empty(t, f.jobs.failed)
		assert.Empty(t, f.jobs.sent)
	})

	t.Run("email without SMTP stays queued and still publishes the event", func(t *testing.T) {
		f := newFixture(t, true)
		f.dispatcher.mailer = nil

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelEmail, confirmed, notification.Options{})

		require.NoError(t, err, "an unconfigured channel is not a delivery failure")
		assert.False(t, ok)
		require.Len(t, f.jobs.created, 2)
		assert.Empty(t, f.jobs.failed)
		assert.Equal(t, []uuid.UUID{f.jobs.created[1].ID}, f.jobs.sent)
		assert.Len(t, f.events.events, 1)
	})

	t.Run("outbox write failure", func(t *testing.T) {
		f := newFixture(t, false)
		f.jobs.err = assert.AnError

		ok, err := f.dispatcher.SendNotification(ctx, userID, notification.ChannelEmail, confirmed, notification.Options{})

		assert.False(t, ok)
		assert.True(t, errs.Is(err, errs.ErrDependency))
		assert.Empty(t, f.mail.sent)
	})

	t.Run("unknown channel", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.dispatcher.SendNotification(ctx, userID, notification.Channel("fax"), confirmed, notification.Options{})

		assert.True(t, errs.Is(err, notification.ErrInvalidChannel))
		assert.Empty(t, f.jobs.created)
	})
}

func TestDispatcher_RetryFailed(t *testing.T) {
	ctx := context.Background()
	raw, err := json.Marshal(notification.NewPayload(confirmed, notification.Options{}))
	require.NoError(t, err)

	f := newFixture(t, true)
	f.events.err = assert.AnError
	f.jobs.claim = []sqlc.NotificationJobs{
		{ID: uuid.New(), UserID: uuid.New(), Channel: "email", Topic: confirmed.Topic, Payload: raw, Attempts: 1},
		{ID: uuid.New(), UserID: uuid.New(), Channel: "event", Topic: confirmed.Topic, Payload: raw, Attempts: 2},
	}

	sent, err := f.dispatcher.RetryFailed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, f.tx.committed)
	assert.Equal(t, []uuid.UUID{f.jobs.claim[0].ID}, f.jobs.sent)
	require.Len(t, f.jobs.failed, 1)
	assert.Equal(t, fixedNow.Add(4*time.Minute), pgconv.TimeFromPgtype(f.jobs.failed[0].RunAt))
}

func TestDispatcher_RetryFailed_UnconfiguredChannel(t *testing.T) {
	ctx := context.Background()
	raw, err := json.Marshal(notification.NewPayload(confirmed, notification.Options{}))
	require.NoError(t, err)

	f := newFixture(t, false)
	f.dispatcher.mailer = nil
	job := sqlc.NotificationJobs{ID: uuid.New(), UserID: uuid.New(), Channel: "email", Topic: confirmed.Topic, Payload: raw, Status: "queued"}
	f.jobs.claim = []sqlc.NotificationJobs{job}

	sent, err := f.dispatcher.RetryFailed(ctx)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, f.jobs.failed, "no attempt is spent while the channel is missing")
	require.Len(t, f.jobs.deferred, 1)
	assert.Equal(t, job.ID, f.jobs.deferred[0].ID)
	assert.Equal(t, fixedNow.Add(time.Hour), pgconv.TimeFromPgtype(f.jobs.deferred[0].RunAt))
	assert.Contains(t, f.jobs.deferred[0].LastError.String, "not configured")

	f.dispatcher.mailer = f.mail
	f.jobs.deferred = nil

	sent, err = f.dispatcher.RetryFailed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uuid.UUID{job.ID}, f.jobs.sent)
	assert.Len(t, f.mail.sent, 1)
}

func TestDispatcher_retryDelay(t *testing.T) {
	d := &Dispatcher{cfg: config.NotificationConfig{RetryInterval: 10 * time.Minute}}

	assert.Equal(t, 10*time.Minute, d.retryDelay(0))
	assert.Equal(t, 40*time.Minute, d.retryDelay(2))
	assert.Equal(t, time.Hour, d.retryDelay(3))
	assert.Equal(t, time.Hour, d.retryDelay(30))
}
