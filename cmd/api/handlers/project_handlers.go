package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateProjectHandler godoc
// @Summary      Create a project
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateProjectRequest  true  "project data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /projects [post]
func CreateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "project_created"})
	}
}

// ListProjectsHandler godoc
// @Summary      List own projects
// @Tags         projects
// @Security     BearerAuth
// @Param        page       query  int   false  "Page number (1-based)"
// @Param        limit      query  int   false  "Page size (<=100)"
// @Param        hidden     query  bool  false  "Filter by hidden flag"
// @Param        highlight  query  bool  false  "Filter by highlight flag"
// @Produce      json
// @Success      200  {object}  object{data=[]models.Project,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.ProjectFilters
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_query"})
			return
		}

		projects, meta, err := svc.List(c.Request.Context(), userID, f)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": projects, "meta": meta})
	}
}

// UpdateProjectHandler godoc
// @Summary      Update a project
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                    true  "project ObjectID"
// @Param        request  body  dto.UpdateProjectRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [patch]
func UpdateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project_updated"})
	}
}

// HideProjectHandler godoc
// @Summary      Hide a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "project ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id}/hide [post]
func HideProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project_hidden"})
	}
}

// RecoverProjectHandler godoc
// @Summary      Recover a hidden project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "project ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id}/recover [post]
func RecoverProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project_recovered"})
	}
}

// DeleteProjectHandler godoc
// @Summary      Delete a project permanently
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "project ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [delete]
func DeleteProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
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
