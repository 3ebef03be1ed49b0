package httperr

import (
	"errors"
	"net/http"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/usecase/commands"
	"resource-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// KindDetail names the business rule a request broke.
type KindDetail struct {
	Kind string `json:"kind"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase or domain error onto its HTTP status and aborts.
func Abort(c *gin.Context, err error) {
	var verr *reservation.ValidationError
	var terr *reservation.TransitionError

	switch {
	case errors.As(err, &verr):
		status := http.StatusUnprocessableEntity
		if verr.Kind == reservation.KindSlotTaken {
			status = http.StatusConflict
		}
		AbortWithError(c, status, err, verr.Message, KindDetail{Kind: string(verr.Kind)})
	case errors.As(err, &terr):
		AbortWithError(c, http.StatusConflict, err, terr.Message, KindDetail{Kind: string(terr.Kind)})
	case errs.Is(err, commands.ErrResourceNotFound), errs.Is(err, queries.ErrResourceNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errs.Is(err, commands.ErrReservationNotFound), errs.Is(err, queries.ErrReservationNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, commands.ErrRequesterNotFound):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Requester not found", nil)
	case errs.Is(err, commands.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Not allowed to act on this reservation", nil)
	case errs.Is(err, queries.ErrInvalidHorizon):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, queries.ErrInvalidStatusFilter), errs.Is(err, queries.ErrInvalidWindow), errs.Is(err, queries.ErrInvalidListFilter):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
	case errs.Is(err, reservation.ErrPrecondition):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
