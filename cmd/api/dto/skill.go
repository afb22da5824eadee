package dto

// CreateSkillRequest registers a skill.
type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required" example:"Go"`
	Level    int    `json:"level" binding:"omitempty,min=0,max=100" example:"80"`
	Category string `json:"category" example:"Backend"`
}

// UpdateSkillRequest patches a skill; nil fields stay untouched.
type UpdateSkillRequest struct {
	Name     *string `json:"name,omitempty"`
	Level    *int    `json:"level,omitempty" binding:"omitempty,min=0,max=100"`
	Category *string `json:"category,omitempty"`
}

// SkillFilters narrows the "my skills" listing.
type SkillFilters struct {
	PageQuery
	Hidden   *bool  `form:"hidden" json:"hidden,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
}
