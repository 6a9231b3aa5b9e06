package dto

// Request DTOs

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response DTOs

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
