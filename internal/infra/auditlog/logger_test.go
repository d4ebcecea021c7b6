//go:build unit

package auditlog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rental-backoffice/internal/domain/audit"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/pgconv"
	sharedmock "rental-backoffice/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingQueries struct {
	got []sqlc.InsertAuditLogParams
	err error
}

func (r *recordingQueries) InsertAuditLog(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertAuditLogParams) error {
	if r.err != nil {
		return r.err
	}
	r.got = append(r.got, arg)
	return nil
}

func newLogger(t *testing.T, q *recordingQueries, now time.Time) *Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return NewLogger(uow, q, clock.NewMockClock(now))
}

func TestLogger_LogEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	actorID := uuid.New()

	t.Run("writes the entry", func(t *testing.T) {
		q := &recordingQueries{}
		l := newLogger(t, q, now)

		err := l.LogEvent(ctx, audit.ResourceBooking, bookingID, audit.ActionBookingCreated,
			map[string]any{"pickup_date": "2024-06-01"}, &actorID)

		require.NoError(t, err)
		require.Len(t, q.got, 1)
		row := q.got[0]
		assert.Equal(t, "booking", row.Resource)
		assert.Equal(t, bookingID, row.ResourceID)
		assert.Equal(t, "booking_created", row.Action)
		assert.Equal(t, &actorID, pgconv.UUIDPtrFromPgtype(row.ActorID))
		assert.Equal(t, now, pgconv.TimeFromPgtype(row.CreatedAt))

		var ctxMap map[string]any
		require.NoError(t, json.Unmarshal(row.Context, &ctxMap))
		assert.Equal(t, "2024-06-01", ctxMap["pickup_date"])
	})

	t.Run("system actor is stored as null", func(t *testing.T) {
		q := &recordingQueries{}
		l := newLogger(t, q, now)

		require.NoError(t, l.LogEvent(ctx, audit.ResourceVehicle, uuid.New(), audit.ActionVehicleStatusChanged, nil, nil))
		assert.False(t, q.got[0].ActorID.Valid)
	})

	t.Run("insert failure is a dependency error", func(t *testing.T) {
		l := newLogger(t, &recordingQueries{err: assert.AnError}, now)

		err := l.LogEvent(ctx, audit.ResourceBooking, bookingID, audit.ActionBookingCancelled, nil, &actorID)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDependency))
	})

	t.Run("missing action is rejected before writing", func(t *testing.T) {
		q := &recordingQueries{}
		l := newLogger(t, q, now)

		err := l.LogEvent(ctx, audit.ResourceBooking, bookingID, "", nil, nil)

		assert.True(t, errs.Is(err, audit.ErrInvalidEntry))
		assert.Empty(t, q.got)
	})
}
