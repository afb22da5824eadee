package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
)

// CreateSocialLinkHandler godoc
// @Summary      Create a social media link
// @Tags         social-links
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.CreateSocialLinkRequest  true  "link data"
// @Produce      json
// @Success      201  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /social-links [post]
func CreateSocialLinkHandler(svc *services.SocialLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.CreateSocialLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Create(c.Request.Context(), userID, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.MessageResponseDTO{Message: "social_link_created"})
	}
}

// ListSocialLinksHandler godoc
// @Summary      List own social media links
// @Tags         social-links
// @Security     BearerAuth
// @Param        page    query  int   false  "Page number (1-based)"
// @Param        limit   query  int   false  "Page size (<=100)"
// @Param        hidden  query  bool  false  "Filter by hidden flag"
// @Produce      json
// @Success      200  {object}  object{data=[]models.SocialLink,meta=dto.PageMeta}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /social-links [get]
func ListSocialLinksHandler(svc *services.SocialLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var f dto.SocialLinkFilters
		if err := c.ShouldBindQuery(&f); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_query"})
			return
		}

		links, meta, err := svc.List(c.Request.Context(), userID, f)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": links, "meta": meta})
	}
}

// UpdateSocialLinkHandler godoc
// @Summary      Update a social media link
// @Tags         social-links
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                       true  "link ObjectID"
// @Param        request  body  dto.UpdateSocialLinkRequest  true  "fields to update"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /social-links/{id} [patch]
func UpdateSocialLinkHandler(svc *services.SocialLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateSocialLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Update(c.Request.Context(), userID, c.Param("id"), req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "social_link_updated"})
	}
}

// HideSocialLinkHandler godoc
// @Summary      Hide a social media link
// @Tags         social-links
// @Security     BearerAuth
// @Param        id  path  string  true  "link ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /social-links/{id}/hide [post]
func HideSocialLinkHandler(svc *services.SocialLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Hide(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "social_link_hidden"})
	}
}

// RecoverSocialLinkHandler godoc
// @Summary      Recover a hidden social media link
// @Tags         social-links
// @Security     BearerAuth
// @Param        id  path  string  true  "link ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /social-links/{id}/recover [post]
func RecoverSocialLinkHandler(svc *services.SocialLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := svc.Recover(c.Request.Context(), userID, c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "social_link_recovered"})
	}
}

// DeleteSocialLinkHandler godoc
// @Summary      Delete a social media link permanently
// @Tags         social-links
// @Security     BearerAuth
// @Param        id  path  string  true  "link ObjectID"
// @Produce      json
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Router       /social-links/{id} [delete]
func DeleteSocialLinkHandler(svc *services.SocialLinkService) gin.HandlerFunc {
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
