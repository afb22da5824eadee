package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateSkillHandler godoc
// @Summary      Create a skill
// @Tags         skills
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateSkillRequest  true  "skill data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /skills [post]
func CreateSkillHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateSkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "skill_created"})
	}
}

// ListSkillsHandler godoc
// @Summary      List own skills
// @Tags         skills
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        limit     query  int     false  "Page size (<=100)"
// @Param        hidden    query  bool    false  "Filter by hidden flag"
// @Param        category  query  string  false  "Filter by category"
// @Produce      json
// @Success      200  {object}  object{data=[]models.Skill,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /skills [get]
func ListSkillsHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.SkillFilters
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_query"})
			return
		}

		skills, meta, err := svc.List(c.Request.Context(), userID, f)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": skills, "meta": meta})
	}
}

// ListSkillCategoriesHandler godoc
// @Summary      List own skill categories
// @Tags         skills
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  object{data=[]string}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /skills/categories [get]
func ListSkillCategoriesHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		categories, err := svc.Categories(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"data": categories})
	}
}

// UpdateSkillHandler godoc
// @Summary      Update a skill
// @Tags         skills
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                 true  "skill ObjectID"
// @Param        request  body  dto.UpdateSkillRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /skills/{id} [patch]
func UpdateSkillHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateSkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "skill_updated"})
	}
}

// HideSkillHandler godoc
// @Summary      Hide a skill
// @Tags         skills
// @Security     BearerAuth
// @Param        id  path  string  true  "skill ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /skills/{id}/hide [post]
func HideSkillHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "skill_hidden"})
	}
}

// RecoverSkillHandler godoc
// @Summary      Recover a hidden skill
// @Tags         skills
// @Security     BearerAuth
// @Param        id  path  string  true  "skill ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /skills/{id}/recover [post]
func RecoverSkillHandler(svc *services.SkillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "skill_recovered"})
	}
}

// DeleteSkillHandler godoc
// @Summary      Delete a skill permanently
// @Tags         skills
// @Security     BearerAuth
// @Param        id  path  string  true  "skill ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /skills/{id} [delete]
func DeleteSkillHandler(svc *services.SkillService) gin.HandlerFunc {
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
