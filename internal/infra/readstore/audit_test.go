//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/infra/readstore"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/usecase/queries"
	readstoremock "rental-backoffice/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditReadStore_ListFirstPage(t *testing.T) {
	ctx := context.Background()
	resource := "booking"
	resourceID := uuid.New()
	actorID := uuid.New()

	t.Run("filter is forwarded and context decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditViewQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().
			ListAuditLogsFirstPage(ctx, gomock.Any(), sqlc.ListAuditLogsFirstPageParams{
				Resource:   pgtype.Text{String: resource, Valid: true},
				ResourceID: pgtype.UUID{Bytes: resourceID, Valid: true},
				RowLimit:   21,
			}).
			Return([]sqlc.AuditLogs{{
				ID:         uuid.New(),
				Resource:   resource,
				ResourceID: resourceID,
				Action:     "booking_cancelled",
				ActorID:    pgtype.UUID{Bytes: actorID, Valid: true},
				Context:    []byte(`{"refund_cents":10000}`),
				CreatedAt:  ts(time.Now()),
			}}, nil)

		logs, err := store.ListFirstPage(ctx, queries.AuditFilter{Resource: &resource, ResourceID: &resourceID}, 21)

		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "booking_cancelled", logs[0].Action)
		require.NotNil(t, logs[0].ActorID)
		assert.Equal(t, actorID, *logs[0].ActorID)
		assert.Equal(t, float64(10000), logs[0].Context["refund_cents"])
	})

	t.Run("system entries have no actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditViewQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().
			ListAuditLogsFirstPage(ctx, gomock.Any(), gomock.Any()).
			Return([]sqlc.AuditLogs{{ID: uuid.New(), Action: "booking_created", CreatedAt: ts(time.Now())}}, nil)

		logs, err := store.ListFirstPage(ctx, queries.AuditFilter{}, 20)

		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Nil(t, logs[0].ActorID)
		assert.NotNil(t, logs[0].Context)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAuditViewQueries(ctrl)
		store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListAuditLogsFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListFirstPage(ctx, queries.AuditFilter{}, 20)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAuditReadStore_ListKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockAuditViewQueries(ctrl)
	store := readstore.NewAuditReadStore(mockQueries, &mockDBTX{})

	lastID := uuid.New()
	lastCreatedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().
		ListAuditLogsKeyset(ctx, gomock.Any(), sqlc.ListAuditLogsKeysetParams{
			LastCreatedAt: ts(lastCreatedAt),
			LastID:        lastID,
			RowLimit:      5,
		}).
		Return([]sqlc.AuditLogs{}, nil)

	logs, err := store.ListKeyset(ctx, queries.AuditFilter{}, lastCreatedAt, lastID, 5)

	require.NoError(t, err)
	assert.Empty(t, logs)
}
