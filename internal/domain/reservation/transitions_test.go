//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStatus(t *testing.T, status reservation.Status) *reservation.Reservation {
	t.Helper()
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		RequesterID:  uuid.New(),
		CreatorID:    uuid.New(),
		Start:        at(9, 0),
		End:          at(10, 30),
		Status:       status,
		Participants: 2,
		CreatedAt:    baseNow,
		UpdatedAt:    baseNow,
	})
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   reservation.Status
		action reservation.Action
		now    time.Time
		want   reservation.Status
		errIs  error
	}{
		{name: "confirm pending", from: reservation.StatusPending, action: reservation.ActionConfirm, now: baseNow, want: reservation.StatusConfirmed},
		{name: "confirm confirmed", from: reservation.StatusConfirmed, action: reservation.ActionConfirm, now: baseNow, errIs: reservation.ErrInvalidTransition},
		{name: "confirm cancelled", from: reservation.StatusCancelled, action: reservation.ActionConfirm, now: baseNow, errIs: reservation.ErrInvalidTransition},

		{name: "cancel exactly 2h before", from: reservation.StatusConfirmed, action: reservation.ActionCancel, now: at(7, 0), want: reservation.StatusCancelled},
		{name: "cancel pending well ahead", from: reservation.StatusPending, action: reservation.ActionCancel, now: baseNow, want: reservation.StatusCancelled},
		{name: "cancel 1h59m before", from: reservation.StatusConfirmed, action: reservation.ActionCancel, now: at(7, 1), errIs: reservation.ErrCancellationWindowClosed},
		{name: "cancel after start", from: reservation.StatusPending, action: reservation.ActionCancel, now: at(9, 30), errIs: reservation.ErrCancellationWindowClosed},
		{name: "cancel cancelled", from: reservation.StatusCancelled, action: reservation.ActionCancel, now: baseNow, errIs: reservation.ErrInvalidTransition},
		{name: "cancel completed", from: reservation.StatusCompleted, action: reservation.ActionCancel, now: baseNow, errIs: reservation.ErrInvalidTransition},
		{name: "cancel completed inside window", from: reservation.StatusCompleted, action: reservation.ActionCancel, now: at(11, 0), errIs: reservation.ErrInvalidTransition},

		{name: "no-show before start", from: reservation.StatusConfirmed, action: reservation.ActionMarkNoShow, now: at(8, 59), errIs: reservation.ErrTooEarly},
		{name: "no-show at start", from: reservation.StatusConfirmed, action: reservation.ActionMarkNoShow, now: at(9, 0), want: reservation.StatusNoShow},
		{name: "no-show after start", from: reservation.StatusPending, action: reservation.ActionMarkNoShow, now: at(9, 20), want: reservation.StatusNoShow},
		{name: "no-show terminal", from: reservation.StatusNoShow, action: reservation.ActionMarkNoShow, now: at(9, 20), errIs: reservation.ErrInvalidTransition},

		{name: "complete before end", from: reservation.StatusConfirmed, action: reservation.ActionComplete, now: at(10, 29), errIs: reservation.ErrTooEarly},
		{name: "complete at end", from: reservation.StatusConfirmed, action: reservation.ActionComplete, now: at(10, 30), want: reservation.StatusCompleted},
		{name: "complete after end", from: reservation.StatusConfirmed, action: reservation.ActionComplete, now: at(12, 0), want: reservation.StatusCompleted},
		{name: "complete cancelled", from: reservation.StatusCancelled, action: reservation.ActionComplete, now: at(12, 0), errIs: reservation.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withStatus(t, tt.from)
			got, err := reservation.Transition(r, tt.action, tt.now)

			assert.Equal(t, tt.from, r.Status(), "input must not change")
			assert.Equal(t, baseNow, r.UpdatedAt())

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status())
			assert.Equal(t, tt.now, got.UpdatedAt())
			assert.Equal(t, r.ID(), got.ID())
			assert.Equal(t, r.CreatedAt(), got.CreatedAt())
		})
	}
}

func TestTransition_UnknownAction(t *testing.T) {
	_, err := reservation.Transition(withStatus(t, reservation.StatusPending), reservation.Action("archive"), baseNow)
	assert.ErrorIs(t, err, reservation.ErrPrecondition)

	_, err = reservation.Transition(nil, reservation.ActionConfirm, baseNow)
	assert.ErrorIs(t, err, reservation.ErrPrecondition)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	actions := []reservation.Action{
		reservation.ActionConfirm, reservation.ActionCancel,
		reservation.ActionMarkNoShow, reservation.ActionComplete,
	}
	for _, s := range []reservation.Status{reservation.StatusCancelled, reservation.StatusNoShow, reservation.StatusCompleted} {
		for _, a := range actions {
			_, err := reservation.Transition(withStatus(t, s), a, at(12, 0))
			assert.ErrorIs(t, err, reservation.ErrInvalidTransition, "%s from %s", a, s)
		}
	}
}

func TestReservationLifecycle(t *testing.T) {
	room := newResource(t, resource.TypeRoom, 4)
	member := user.NewActor(uuid.New(), user.RoleMember)

	created, err := reservation.Validate(reservation.Proposal{
		Start: at(9, 0), End: at(10, 30), Participants: 2,
	}, room, member, nil, baseNow)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, created.Status())

	confirmed, err := reservation.Transition(created, reservation.ActionConfirm, baseNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, confirmed.Status())

	_, err = reservation.Transition(confirmed, reservation.ActionCancel, at(8, 30))
	assert.ErrorIs(t, err, reservation.ErrCancellationWindowClosed)
	assert.Equal(t, reservation.StatusConfirmed, confirmed.Status())
}
