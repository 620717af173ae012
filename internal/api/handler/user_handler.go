package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/care-io/booking-system/internal/core/ports"
)

// UserHandler serves self-service profile operations.
type UserHandler struct {
	service ports.ProfileService
}

func NewUserHandler(service ports.ProfileService) *UserHandler {
	return &UserHandler{service: service}
}

// UpdateProfile handles PUT /v1/users/me. The target account is always the
// caller's own, taken from the token.
//
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), email, ports.ProfileUpdate{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
