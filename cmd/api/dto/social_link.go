package dto

// CreateSocialLinkRequest registers a social media reference.
type CreateSocialLinkRequest struct {
	Name         string `json:"name" binding:"required" example:"GitHub"`
	RedirectLink string `json:"redirectLink" binding:"required,url" example:"https://github.com/janedoe"`
}

// UpdateSocialLinkRequest patches a social media reference.
type UpdateSocialLinkRequest struct {
	Name         *string `json:"name,omitempty"`
	RedirectLink *string `json:"redirectLink,omitempty" binding:"omitempty,url"`
}

// SocialLinkFilters narrows the "my social links" listing.
type SocialLinkFilters struct {
	PageQuery
	Hidden *bool `form:"hidden" json:"hidden,omitempty"`
}
