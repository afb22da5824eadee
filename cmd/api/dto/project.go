package dto

// CreateProjectRequest registers a portfolio project.
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required" example:"Portfolio API"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
	TechStack   []string `json:"techStack" binding:"required,min=1"`
	RepoURL     string   `json:"repoUrl" binding:"omitempty,url"`
	DemoURL     string   `json:"demoUrl" binding:"omitempty,url"`
	FinishDate  string   `json:"finishDate" binding:"required" example:"2024-06-30"`
	Highlight   bool     `json:"highlight"`
}

// UpdateProjectRequest patches a project.
type UpdateProjectRequest struct {
	Title       *string   `json:"title,omitempty"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Description *string   `json:"description,omitempty"`
	Role        *string   `json:"role,omitempty"`
	TechStack   *[]string `json:"techStack,omitempty"`
	RepoURL     *string   `json:"repoUrl,omitempty" binding:"omitempty,url"`
	DemoURL     *string   `json:"demoUrl,omitempty" binding:"omitempty,url"`
	FinishDate  *string   `json:"finishDate,omitempty"`
	Highlight   *bool     `json:"highlight,omitempty"`
}

// ProjectFilters narrows the "my projects" listing.
type ProjectFilters struct {
	PageQuery
	Hidden    *bool `form:"hidden" json:"hidden,omitempty"`
	Highlight *bool `form:"highlight" json:"highlight,omitempty"`
}
