package dto

// CreateEducationRequest registers a degree or study record.
// Dates are ISO 8601 (2006-01-02 or full RFC3339).
type CreateEducationRequest struct {
	Institution string `json:"institution" binding:"required" example:"Universidad Nacional"`
	Title       string `json:"title" binding:"required" example:"Bachelor of Computer Science"`
	Description string `json:"description"`
	Finished    bool   `json:"finished"`
	StartDate   string `json:"startDate" binding:"required" example:"2021-01-15"`
	EndDate     string `json:"endDate" example:"2024-06-30"`
}

// UpdateEducationRequest patches an education record.
type UpdateEducationRequest struct {
	Institution *string `json:"institution,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Finished    *bool   `json:"finished,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// EducationFilters narrows the "my education" listing.
type EducationFilters struct {
	PageQuery
	Hidden   *bool `form:"hidden" json:"hidden,omitempty"`
	Finished *bool `form:"finished" json:"finished,omitempty"`
}
