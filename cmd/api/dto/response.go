package dto

// ErrorResponseDTO is the shared error payload shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_token"`
}

// MessageResponseDTO is the shared success payload for mutations.
type MessageResponseDTO struct {
	Message string `json:"message" example:"successful"`
}
