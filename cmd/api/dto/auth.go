package dto

// RegisterRequest creates an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone    string `json:"phone" example:"+50688880000"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates by email or phone.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"jane@example.com"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse carries the signed access token and a user snapshot.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        UserHeaderDTO `json:"user"`
}

// UserHeaderDTO is the small user snapshot returned on login.
type UserHeaderDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
