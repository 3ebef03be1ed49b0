package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/user"
	"resource-booking/internal/infra"
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRequesterNotFound       = errs.New("requester not found")
	ErrForbidden               = errs.New("not allowed to act on this reservation")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const notificationKindEmail = "email"

type CreateReservationInput struct {
	ResourceID   uuid.UUID
	RequesterID  uuid.UUID
	Start        time.Time
	End          time.Time
	Participants int
	Note         string
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput, actor user.Actor) (*reservation.Reservation, error)
	Transition(ctx context.Context, id uuid.UUID, action reservation.Action, actor user.Actor) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	validator *reservation.Validator
	clock     clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, validator *reservation.Validator, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		validator: validator,
		clock:     clk,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, input CreateReservationInput, actor user.Actor) (*reservation.Reservation, error) {
	var created *reservation.Reservation

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockResource(ctx, input.ResourceID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := tx.Reads().ResourceByID(ctx, input.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := tx.Reads().ReservationsForResource(ctx, res.ID(), shared.ReservationFilter{
			Statuses: reservation.ActiveStatuses(),
			From:     input.Start,
			To:       input.End,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		candidate, err := uc.validator.Validate(reservation.Proposal{
			ResourceID:   input.ResourceID,
			RequesterID:  input.RequesterID,
			Start:        input.Start,
			End:          input.End,
			Participants: input.Participants,
			Note:         input.Note,
		}, res, actor, existing)
		if err != nil {
			return err
		}

		if _, err := tx.Reservations().Create(ctx, candidate); err != nil {
			// exclusion constraint: a concurrent writer got there first
			if infra.IsKind(err, infra.KindConflict) {
				return reservation.ErrSlotTaken
			}
			// the resource row is locked, so only requester or creator can be missing
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRequesterNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := uc.enqueue(ctx, tx, "reservation_created", candidate); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = candidate
		return nil
	})
	if err != nil {
		logFailure(ctx, "create reservation", err)
		return nil, err
	}
	return created, nil
}

func (uc *reservationUseCaseImpl) Transition(ctx context.Context, id uuid.UUID, action reservation.Action, actor user.Actor) (*reservation.Reservation, error) {
	var updated *reservation.Reservation

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !CanActOn(actor, current) {
			return ErrForbidden
		}

		next, err := reservation.Transition(current, action, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, next); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := uc.enqueue(ctx, tx, "reservation_"+action.String(), next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		updated = next
		return nil
	})
	if err != nil {
		logFailure(ctx, "transition reservation", err)
		return nil, err
	}
	return updated, nil
}

// CanActOn reports whether actor may change the reservation: its requester,
// its creator, or any manager or admin.
func CanActOn(actor user.Actor, r *reservation.Reservation) bool {
	if actor.Role.CanManageReservations() {
		return true
	}
	return r.IsOwnedBy(actor.ID)
}

func (uc *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, r *reservation.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": r.ID(),
		"resource_id":    r.ResourceID(),
		"requester_id":   r.RequesterID(),
		"status":         r.Status(),
		"start":          r.Start(),
		"end":            r.End(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, notificationKindEmail, topic, payload, uc.clock.Now())
}

func logFailure(ctx context.Context, op string, err error) {
	if errs.Is(err, ErrDatabaseOperationFailed) {
		slog.ErrorContext(ctx, "failed to "+op, "error", err.Error())
	}
}
