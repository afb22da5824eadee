package dto

// CreateLanguageRequest registers a spoken language.
type CreateLanguageRequest struct {
	Language string `json:"language" binding:"required" example:"English"`
	Level    string `json:"level" binding:"required" example:"B2"`
}

// UpdateLanguageRequest patches a language; nil fields stay untouched.
type UpdateLanguageRequest struct {
	Language *string `json:"language,omitempty"`
	Level    *string `json:"level,omitempty"`
}

// LanguageFilters narrows the "my languages" listing.
type LanguageFilters struct {
	PageQuery
	Hidden *bool `form:"hidden" json:"hidden,omitempty"`
}
