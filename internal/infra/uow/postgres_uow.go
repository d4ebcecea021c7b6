package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"rental-backoffice/internal/domain/booking"
	"rental-backoffice/internal/domain/payment"
	"rental-backoffice/internal/domain/user"
	"rental-backoffice/internal/domain/vehicle"
	"rental-backoffice/internal/infra/repository"
	sqlc "rental-backoffice/internal/infra/sqlc/generated"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var errMaxRetriesExceeded = errs.New("transaction failed after max retries")

// retryPolicy bounds how often a transaction aborted by 40001/40P01 is replayed.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: defaultRetryPolicy,
	}
}

// Within runs fn at ReadCommitted; the per-vehicle advisory lock and the
// exclusion constraint provide the booking overlap guarantee.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runWithRetry(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "read-only")

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Rollback happens inside each iteration so a retry never stacks deferred calls.
func (u *PostgresUoW) runWithRetry(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.retry.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		rollback(ctx, pgxTx, "write")
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		rollback(ctx, pgxTx, "write")
		return errs.Mark(err, shared.ErrTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, kind string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "tx", kind, "error", err.Error())
	}
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.base
	return wait + time.Duration(cryptoRandInt63n(int64(wait/5)))
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	bookings      shared.BookingRepository
	vehicles      shared.VehicleRepository
	payments      shared.PaymentRepository
	users         shared.UserRepository
	refreshTokens shared.RefreshTokenRepository
	idempotency   shared.IdempotencyRepository
	reads         shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicles == nil {
		t.vehicles = repository.NewVehicleRepository(t.q, t.dbtx)
	}
	return t.vehicles
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.payments == nil {
		t.payments = repository.NewPaymentRepository(t.q, t.dbtx)
	}
	return t.payments
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.users
}

func (t *pgTx) RefreshTokens() shared.RefreshTokenRepository {
	if t.refreshTokens == nil {
		t.refreshTokens = repository.NewRefreshTokenRepository(t.q, t.dbtx)
	}
	return t.refreshTokens
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.q, t.dbtx)
	}
	return t.idempotency
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.reads
}

// commandReads loads domain aggregates for command validation, either on the
// pool or inside the surrounding transaction.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return repository.NewBookingRepository(r.q, r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	return repository.NewVehicleRepository(r.q, r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) LatestCompletedPayment(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	return repository.NewPaymentRepository(r.q, r.dbtx).LatestCompleted(ctx, bookingID)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return repository.NewUserRepository(r.q, r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return repository.NewUserRepository(r.q, r.dbtx).FindByEmail(ctx, email)
}

func (r *commandReads) RefreshToken(ctx context.Context, jti uuid.UUID) (*shared.RefreshTokenRecord, error) {
	return repository.NewRefreshTokenRepository(r.q, r.dbtx).Find(ctx, jti)
}
