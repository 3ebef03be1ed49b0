package reservation

import (
	"fmt"

	"resource-booking/internal/pkg/errs"
)

// ErrPrecondition marks calls made with inputs the caller was required to
// supply. It signals a programming error, never a business rule.
var ErrPrecondition = errs.New("reservation precondition violated")

type ValidationKind string

const (
	KindInvalidWindow            ValidationKind = "INVALID_WINDOW"
	KindTooShort                 ValidationKind = "TOO_SHORT"
	KindTooLong                  ValidationKind = "TOO_LONG"
	KindNotQuarterAligned        ValidationKind = "NOT_QUARTER_ALIGNED"
	KindPastReservationForbidden ValidationKind = "PAST_RESERVATION_FORBIDDEN"
	KindInvalidParticipants      ValidationKind = "INVALID_PARTICIPANTS"
	KindCapacityExceeded         ValidationKind = "CAPACITY_EXCEEDED"
	KindSlotTaken                ValidationKind = "SLOT_TAKEN"
)

// ValidationError is returned when a proposal breaks a creation rule.
// errors.Is matches any ValidationError of the same Kind, so callers compare
// against the exported sentinels while still getting a detailed message.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func newValidationError(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidWindow            = &ValidationError{Kind: KindInvalidWindow, Message: "end time must be after start time"}
	ErrTooShort                 = &ValidationError{Kind: KindTooShort, Message: "reservation is shorter than the minimum duration"}
	ErrTooLong                  = &ValidationError{Kind: KindTooLong, Message: "reservation exceeds the maximum duration"}
	ErrNotQuarterAligned        = &ValidationError{Kind: KindNotQuarterAligned, Message: "start and end must fall on a quarter hour"}
	ErrPastReservationForbidden = &ValidationError{Kind: KindPastReservationForbidden, Message: "only administrators can create reservations in the past"}
	ErrInvalidParticipants      = &ValidationError{Kind: KindInvalidParticipants, Message: "participant count must be at least 1"}
	ErrCapacityExceeded         = &ValidationError{Kind: KindCapacityExceeded, Message: "participant count exceeds resource capacity"}
	ErrSlotTaken                = &ValidationError{Kind: KindSlotTaken, Message: "time slot is already reserved"}
)

type TransitionKind string

const (
	KindInvalidTransition        TransitionKind = "INVALID_TRANSITION"
	KindCancellationWindowClosed TransitionKind = "CANCELLATION_WINDOW_CLOSED"
	KindTooEarly                 TransitionKind = "TOO_EARLY"
)

type TransitionError struct {
	Kind    TransitionKind
	Action  Action
	From    Status
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

func (e *TransitionError) Is(target error) bool {
	t, ok := target.(*TransitionError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidTransition        = &TransitionError{Kind: KindInvalidTransition, Message: "transition not allowed from current status"}
	ErrCancellationWindowClosed = &TransitionError{Kind: KindCancellationWindowClosed, Message: "reservation starts too soon to be cancelled"}
	ErrTooEarly                 = &TransitionError{Kind: KindTooEarly, Message: "transition not allowed yet"}
)
