package dto

// CreateExperienceRequest registers a work experience record.
// Dates are ISO 8601 (2006-01-02 or full RFC3339); EndDate empty while ongoing.
type CreateExperienceRequest struct {
	Role             string   `json:"role" binding:"required" example:"Senior Backend Developer"`
	Company          string   `json:"company" binding:"required" example:"Acme"`
	StartDate        string   `json:"startDate" binding:"required" example:"2021-01-15"`
	EndDate          string   `json:"endDate" example:"2024-06-30"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// UpdateExperienceRequest patches an experience record.
type UpdateExperienceRequest struct {
	Role             *string   `json:"role,omitempty"`
	Company          *string   `json:"company,omitempty"`
	StartDate        *string   `json:"startDate,omitempty"`
	EndDate          *string   `json:"endDate,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Responsibilities *[]string `json:"responsibilities,omitempty"`
}

// ExperienceFilters narrows the "my experience" listing.
type ExperienceFilters struct {
	PageQuery
	Hidden *bool `form:"hidden" json:"hidden,omitempty"`
}
