package reservation

import (
	"fmt"
	"time"

	"resource-booking/internal/pkg/errs"
)

// CancellationNotice is the minimum lead time before start for a cancel.
const CancellationNotice = 2 * time.Hour

// Transition applies action to a copy of r evaluated at now. r itself is
// never modified, so snapshots read from storage may be shared freely.
func Transition(r *Reservation, action Action, now time.Time) (*Reservation, error) {
	if r == nil {
		return nil, errs.Wrap(ErrPrecondition, "reservation is required")
	}
	next := r.clone()
	var err error
	switch action {
	case ActionConfirm:
		err = next.Confirm(now)
	case ActionCancel:
		err = next.Cancel(now)
	case ActionMarkNoShow:
		err = next.MarkNoShow(now)
	case ActionComplete:
		err = next.Complete(now)
	default:
		return nil, errs.Wrapf(ErrPrecondition, "unknown action %q", action)
	}
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (r *Reservation) Confirm(now time.Time) error {
	if r.status != StatusPending {
		return invalidTransition(ActionConfirm, r.status)
	}
	r.moveTo(StatusConfirmed, now)
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status.IsTerminal() {
		return invalidTransition(ActionCancel, r.status)
	}
	if r.Start().Sub(now) < CancellationNotice {
		return &TransitionError{
			Kind:    KindCancellationWindowClosed,
			Action:  ActionCancel,
			From:    r.status,
			Message: fmt.Sprintf("cancellation requires at least %d hours notice", int(CancellationNotice.Hours())),
		}
	}
	r.moveTo(StatusCancelled, now)
	return nil
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	if r.status.IsTerminal() {
		return invalidTransition(ActionMarkNoShow, r.status)
	}
	if now.Before(r.Start()) {
		return tooEarly(ActionMarkNoShow, r.status, "reservation has not started yet")
	}
	r.moveTo(StatusNoShow, now)
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status.IsTerminal() {
		return invalidTransition(ActionComplete, r.status)
	}
	if now.Before(r.End()) {
		return tooEarly(ActionComplete, r.status, "reservation has not ended yet")
	}
	r.moveTo(StatusCompleted, now)
	return nil
}

func (r *Reservation) moveTo(s Status, now time.Time) {
	r.status = s
	r.updatedAt = now
}

func invalidTransition(a Action, from Status) *TransitionError {
	return &TransitionError{
		Kind:    KindInvalidTransition,
		Action:  a,
		From:    from,
		Message: fmt.Sprintf("cannot %s a %s reservation", a, from),
	}
}

func tooEarly(a Action, from Status, msg string) *TransitionError {
	return &TransitionError{Kind: KindTooEarly, Action: a, From: from, Message: msg}
}
