package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
	"portfolio-api/cmd/internal/logger"
)

// RegisterHandler godoc
// @Summary      Register an account
// @Description  Creates a portfolio owner account with a hashed password
// @Tags         auth
// @Accept       json
// @Param        request  body  dto.RegisterRequest  true  "account data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /auth/register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := authSvc.Register(c.Request.Context(), req); err != nil {
			if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrPhoneTaken) {
				respondServiceError(c, err)
				return
			}
			logger.Log.Errorf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_register"})
			return
		}

		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "account_created"})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Authenticates by email or phone and returns an access token
// @Tags         auth
// @Accept       json
// @Param        request  body  dto.LoginRequest  true  "credentials"
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		user, token, err := authSvc.Login(c.Request.Context(), req.Identifier, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
				return
			}
			logger.Log.Errorf("login failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_login"})
			return
		}

		c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken: token,
			User: dto.UserHeaderDTO{
				ID:       user.ID.Hex(),
				Name:     user.Name,
				Email:    user.Email,
				Phone:    user.Phone,
				PhotoURL: user.PhotoURL,
			},
		})
	}
}
