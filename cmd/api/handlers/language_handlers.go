package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateLanguageHandler godoc
// @Summary      Create a language
// @Tags         languages
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateLanguageRequest  true  "language data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /languages [post]
func CreateLanguageHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "language_created"})
	}
}

// ListLanguagesHandler godoc
// @Summary      List own languages
// @Tags         languages
// @Security     BearerAuth
// @Param        page    query  int   false  "Page number (1-based)"
// @Param        limit   query  int   false  "Page size (<=100)"
// @Param        hidden  query  bool  false  "Filter by hidden flag"
// @Produce      json
// @Success      200  {object}  object{data=[]models.Language,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /languages [get]
func ListLanguagesHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.LanguageFilters
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_query"})
			return
		}

		languages, meta, err := svc.List(c.Request.Context(), userID, f)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": languages, "meta": meta})
	}
}

// UpdateLanguageHandler godoc
// @Summary      Update a language
// @Tags         languages
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                     true  "language ObjectID"
// @Param        request  body  dto.UpdateLanguageRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /languages/{id} [patch]
func UpdateLanguageHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "language_updated"})
	}
}

// HideLanguageHandler godoc
// @Summary      Hide a language
// @Tags         languages
// @Security     BearerAuth
// @Param        id  path  string  true  "language ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /languages/{id}/hide [post]
func HideLanguageHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "language_hidden"})
	}
}

// RecoverLanguageHandler godoc
// @Summary      Recover a hidden language
// @Tags         languages
// @Security     BearerAuth
// @Param        id  path  string  true  "language ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /languages/{id}/recover [post]
func RecoverLanguageHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "language_recovered"})
	}
}

// DeleteLanguageHandler godoc
// @Summary      Delete a language permanently
// @Tags         languages
// @Security     BearerAuth
// @Param        id  path  string  true  "language ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /languages/{id} [delete]
func DeleteLanguageHandler(svc *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
