package api

import (
	"net/http"

	reqdto "resource-booking/internal/handler/dto/request"
	resdto "resource-booking/internal/handler/dto/response"
	"resource-booking/internal/handler/httperr"
	"resource-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resources    queries.ResourceQueries
	reservations queries.ReservationQueries
}

func NewResourceHandler(resources queries.ResourceQueries, reservations queries.ReservationQueries) *ResourceHandler {
	return &ResourceHandler{resources: resources, reservations: reservations}
}

// @Summary List resources
// @Description Search resources with filters, sorting and offset paging
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type query string false "room, vehicle or equipment"
// @Param siteId query string false "Site ID"
// @Param available query bool false "Only active (true) or only inactive (false) resources"
// @Param minCapacity query int false "Minimum capacity"
// @Param sortBy query string false "name, capacity or type (default name)"
// @Param sortOrder query string false "asc or desc (default asc)"
// @Param offset query int false "Offset (default 0)"
// @Param limit query int false "Page size, 1 to 200 (default 100)"
// @Success 200 {object} resdto.ResourceListResponse
// @Failure 400 {object} httperr.Response
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	var q reqdto.ResourceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	page, err := h.resources.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromResourcePage(page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get resource
// @Description Get a resource and whether it is open right now
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	view, err := h.resources.GetResource(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromResourceView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Resource availability
// @Description Day-by-day availability starting today
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param days query int false "Number of days (default 7)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid days", nil)
		return
	}
	view, err := h.resources.GetAvailability(c.Request.Context(), id, q.Days)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Resource statistics
// @Description Occupancy and usage figures computed at request time
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.StatisticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/statistics [get]
func (h *ResourceHandler) Statistics(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	view, err := h.resources.GetStatistics(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromStatisticsView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List resource reservations
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param status query string false "pending, confirmed, cancelled, no_show or completed"
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/reservations [get]
func (h *ResourceHandler) Reservations(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var q reqdto.ReservationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	views, err := h.reservations.ListByResource(c.Request.Context(), id, queries.ReservationListFilter{
		Status: q.Status,
		From:   q.From,
		To:     q.To,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func resourceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return uuid.Nil, false
	}
	return id, true
}
