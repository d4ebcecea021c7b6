package commands

import (
	"context"
	"log/slog"

	"rental-backoffice/internal/domain/audit"
	"rental-backoffice/internal/domain/auth"
	"rental-backoffice/internal/domain/vehicle"
	"rental-backoffice/internal/infra"
	"rental-backoffice/internal/pkg/clock"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleForbidden   = errs.Sentinel("not allowed to manage vehicles", errs.ErrForbidden)
	ErrVehicleHasBookings = errs.Sentinel("vehicle has active bookings from today on", errs.ErrConflict)
)

type VehicleResult struct {
	VehicleID uuid.UUID
	Status    vehicle.Status
	Warnings  []string
}

type VehicleCommands interface {
	ChangeStatus(ctx context.Context, actor auth.Context, vehicleID uuid.UUID, target string) (*VehicleResult, error)
}

type vehicleCommandsImpl struct {
	uow    shared.UnitOfWork
	audit  AuditLogger
	clock  clock.Clock
	policy BookingPolicy
}

func NewVehicleCommands(uow shared.UnitOfWork, auditLogger AuditLogger, policy BookingPolicy, clk clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow, audit: auditLogger, policy: policy, clock: clk}
}

func (uc *vehicleCommandsImpl) ChangeStatus(ctx context.Context, actor auth.Context, vehicleID uuid.UUID, target string) (*VehicleResult, error) {
	if !actor.Has(auth.PermVehiclesManage) {
		return nil, ErrVehicleForbidden
	}
	status, err := vehicle.ParseStatus(target)
	if err != nil {
		return nil, errs.NewValidationError(map[string]string{"status": "must be one of available, unavailable, maintenance"})
	}

	now := uc.clock.Now()
	var (
		v    *vehicle.Vehicle
		from vehicle.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// holding the schedule lock keeps new bookings out while we count
		if err := tx.Bookings().LockVehicle(ctx, vehicleID); err != nil {
			return err
		}
		found, err := tx.Vehicles().FindByIDForUpdate(ctx, vehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		active, err := tx.Vehicles().CountActiveBookingsFrom(ctx, vehicleID, clock.Today(uc.clock, uc.policy.location()))
		if err != nil {
			return err
		}
		from = found.Status()
		if err := found.ChangeStatus(status, active, now); err != nil {
			if errs.Is(err, vehicle.ErrHasActiveBookings) {
				return errs.Mark(err, ErrVehicleHasBookings)
			}
			return err
		}
		if err := tx.Vehicles().UpdateStatus(ctx, found); err != nil {
			return err
		}
		v = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	var warnings []string
	if err := uc.audit.LogEvent(ctx, audit.ResourceVehicle, vehicleID, audit.ActionVehicleStatusChanged, map[string]any{
		"from": string(from),
		"to":   string(status),
	}, actor.ActorID()); err != nil {
		slog.Warn("audit log failed", "vehicle_id", vehicleID, "error", err.Error())
		warnings = append(warnings, WarnAuditFailed)
	}
	return &VehicleResult{VehicleID: v.ID(), Status: v.Status(), Warnings: warnings}, nil
}
