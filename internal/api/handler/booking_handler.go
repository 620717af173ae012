package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/care-io/booking-system/internal/api/metrics"
	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		Service:   req.Service,
		Duration:  req.Duration,
		Division:  req.Division,
		District:  req.District,
		City:      req.City,
		Area:      req.Area,
		Address:   req.Address,
		UserEmail: email,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Service)).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /v1/bookings. Non-admin callers always receive their own
// bookings; admins may filter by requester with ?email=.
//
// @Summary      List bookings newest-first
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Filter by requester email (admin only)"
// @Success      200    {array}   domain.Booking
// @Failure      401    {object}  errorResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	email, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.List(c.Request().Context(), ports.ListBookingsInput{
		ActorRole:  role,
		ActorEmail: email,
		UserEmail:  c.QueryParam("email"),
	})
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus handles PATCH /v1/bookings/:id/status.
//
// @Summary      Change a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateStatusRequest   true  "New status"
// @Success      200   {object}  domain.Booking
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ID:         c.Param("id"),
		Status:     domain.BookingStatus(req.Status),
		ActorRole:  role,
		ActorEmail: email,
	})
	if err != nil {
		return err
	}

	actor := "owner"
	if role == domain.RoleAdmin {
		actor = "admin"
	}
	metrics.BookingStatusChangesTotal.WithLabelValues(string(booking.Status), actor).Inc()

	return c.JSON(http.StatusOK, booking)
}
