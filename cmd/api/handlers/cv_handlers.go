package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/cv"
)

// GenerateCVHandler godoc
// @Summary      Generate a CV as PDF
// @Description  Aggregates the selected records of the authenticated user, renders the chosen template and returns the printed PDF
// @Tags         cv
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.GenerateCVRequest  true  "template and record selection"
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /cv [post]
func GenerateCVHandler(generator *cv.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req dto.GenerateCVRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		// The subject is always the caller; the body cannot print
		// someone else's profile.
		doc, err := generator.Generate(c.Request.Context(), cv.Request{
			TemplateID:    req.TemplateID,
			SubjectID:     userID,
			SkillIDs:      req.SkillIDs,
			LanguageIDs:   req.LanguageIDs,
			EducationIDs:  req.EducationIDs,
			ExperienceIDs: req.ExperienceIDs,
			ProjectIDs:    req.ProjectIDs,
		})
		if err != nil {
			switch {
			case errors.Is(err, cv.ErrEmptyTemplateID):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "missing_template_id"})
			case errors.Is(err, cv.ErrTemplateNotFound):
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "template_not_found"})
			case errors.Is(err, cv.ErrProfileNotFound):
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "profile_not_found"})
			default:
				logger.Log.Errorf("cv generation failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_generate_cv"})
			}
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
		c.Data(http.StatusOK, "application/pdf", doc.Content)
	}
}
