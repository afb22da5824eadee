package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// requireUserID reads the authenticated user id stored by the auth
// middleware. A missing value means the route was wired without the
// middleware, which we treat as unauthorized rather than panicking.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "missing_authentication"})
		return "", false
	}
	return userID, true
}

// respondServiceError maps the service sentinel errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_input"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "no_access_to_record"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "email_already_in_use"})
	case errors.Is(err, services.ErrPhoneTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "phone_already_in_use"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
