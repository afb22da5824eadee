package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateExperienceHandler godoc
// @Summary      Create a work experience record
// @Tags         experiences
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateExperienceRequest  true  "experience data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /experiences [post]
func CreateExperienceHandler(svc *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateExperienceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "experience_created"})
	}
}

// ListExperiencesHandler godoc
// @Summary      List own work experience
// @Description  Ordered by start date, newest first
// @Tags         experiences
// @Security     BearerAuth
// @Param        page    query  int   false  "Page number (1-based)"
// @Param        limit   query  int   false  "Page size (<=100)"
// @Param        hidden  query  bool  false  "Filter by hidden flag"
// @Produce      json
// @Success      200  {object}  object{data=[]models.Experience,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /experiences [get]
func ListExperiencesHandler(svc *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.ExperienceFilters
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_query"})
			return
		}

		records, meta, err := svc.List(c.Request.Context(), userID, f)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": records, "meta": meta})
	}
}

// UpdateExperienceHandler godoc
// @Summary      Update a work experience record
// @Tags         experiences
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                       true  "experience ObjectID"
// @Param        request  body  dto.UpdateExperienceRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /experiences/{id} [patch]
func UpdateExperienceHandler(svc *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateExperienceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "experience_updated"})
	}
}

// HideExperienceHandler godoc
// @Summary      Hide a work experience record
// @Tags         experiences
// @Security     BearerAuth
// @Param        id  path  string  true  "experience ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /experiences/{id}/hide [post]
func HideExperienceHandler(svc *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "experience_hidden"})
	}
}

// RecoverExperienceHandler godoc
// @Summary      Recover a hidden work experience record
// @Tags         experiences
// @Security     BearerAuth
// @Param        id  path  string  true  "experience ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /experiences/{id}/recover [post]
func RecoverExperienceHandler(svc *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "experience_recovered"})
	}
}

// DeleteExperienceHandler godoc
// @Summary      Delete a work experience record permanently
// @Tags         experiences
// @Security     BearerAuth
// @Param        id  path  string  true  "experience ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /experiences/{id} [delete]
func DeleteExperienceHandler(svc *services.ExperienceService) gin.HandlerFunc {
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
