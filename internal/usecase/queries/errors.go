package queries

import "resource-booking/internal/pkg/errs"

var (
	ErrResourceNotFound    = errs.New("resource not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidHorizon      = errs.New("invalid availability horizon")
	ErrInvalidStatusFilter = errs.New("invalid reservation status filter")
	ErrInvalidWindow       = errs.New("invalid time window")
	ErrInvalidListFilter   = errs.New("invalid resource list filter")
	ErrReadFailed          = errs.New("read operation failed")
)
