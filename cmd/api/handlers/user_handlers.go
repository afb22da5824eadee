package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// GetMyInfoHandler godoc
// @Summary      Get own account info
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/me [get]
func GetMyInfoHandler(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		user, err := userSvc.GetInfo(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateBasicInfoHandler godoc
// @Summary      Update portfolio header fields
// @Description  Applies only the fields present in the body
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.UpdateBasicInfoRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /users/me [patch]
func UpdateBasicInfoHandler(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateBasicInfoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := userSvc.UpdateBasicInfo(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "info_updated"})
	}
}

// GetPublicProfileHandler godoc
// @Summary      Get a public portfolio profile
// @Description  Sanitized view of a portfolio owner, no authentication needed
// @Tags         users
// @Param        id  path  string  true  "user ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PublicUserDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/{id}/public [get]
func GetPublicProfileHandler(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := userSvc.GetPublicInfo(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
