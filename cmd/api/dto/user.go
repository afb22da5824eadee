package dto

// UpdateBasicInfoRequest updates the account's portfolio header fields.
// Nil fields are left untouched.
type UpdateBasicInfoRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Title    *string `json:"title,omitempty"`
	SubTitle *string `json:"subTitle,omitempty"`
	Location *string `json:"location,omitempty"`
	HostURL  *string `json:"hostUrl,omitempty" binding:"omitempty,url"`
}

// PublicUserDTO is the sanitized public view of a portfolio owner.
type PublicUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Title    string `json:"title,omitempty"`
	SubTitle string `json:"subTitle,omitempty"`
	Location string `json:"location,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
