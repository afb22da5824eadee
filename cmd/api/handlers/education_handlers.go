package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateEducationHandler godoc
// @Summary      Create an education record
// @Tags         education
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateEducationRequest  true  "education data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /education [post]
func CreateEducationHandler(svc *services.EducationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateEducationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "education_created"})
	}
}

// ListEducationHandler godoc
// @Summary      List own education records
// @Description  Ordered by start date, newest first
// @Tags         education
// @Security     BearerAuth
// @Param        page      query  int   false  "Page number (1-based)"
// @Param        limit     query  int   false  "Page size (<=100)"
// @Param        hidden    query  bool  false  "Filter by hidden flag"
// @Param        finished  query  bool  false  "Filter by finished flag"
// @Produce      json
// @Success      200  {object}  object{data=[]models.Education,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /education [get]
func ListEducationHandler(svc *services.EducationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.EducationFilters
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

// UpdateEducationHandler godoc
// @Summary      Update an education record
// @Tags         education
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                      true  "education ObjectID"
// @Param        request  body  dto.UpdateEducationRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /education/{id} [patch]
func UpdateEducationHandler(svc *services.EducationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateEducationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "education_updated"})
	}
}

// HideEducationHandler godoc
// @Summary      Hide an education record
// @Tags         education
// @Security     BearerAuth
// @Param        id  path  string  true  "education ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /education/{id}/hide [post]
func HideEducationHandler(svc *services.EducationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "education_hidden"})
	}
}

// RecoverEducationHandler godoc
// @Summary      Recover a hidden education record
// @Tags         education
// @Security     BearerAuth
// @Param        id  path  string  true  "education ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /education/{id}/recover [post]
func RecoverEducationHandler(svc *services.EducationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "education_recovered"})
	}
}

// DeleteEducationHandler godoc
// @Summary      Delete an education record permanently
// @Tags         education
// @Security     BearerAuth
// @Param        id  path  string  true  "education ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /education/{id} [delete]
func DeleteEducationHandler(svc *services.EducationService) gin.HandlerFunc {
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
