package dto

// GenerateCVRequest selects the template and the records to print. Every
// ID list is optional; an absent list leaves its section out of the CV.
// The subject is always the authenticated caller, never part of the body.
type GenerateCVRequest struct {
	TemplateID    string   `json:"templateId" binding:"required" example:"1"`
	SkillIDs      []string `json:"skillsIds"`
	LanguageIDs   []string `json:"languagesIds"`
	EducationIDs  []string `json:"educationIds"`
	ExperienceIDs []string `json:"experienceIds"`
	ProjectIDs    []string `json:"projectsIds"`
}
