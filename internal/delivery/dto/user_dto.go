package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Name       string `json:"name" validate:"omitempty,max=255"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url"`
	BloodGroup string `json:"blood_group" validate:"omitempty,max=8"`
	DistrictID string `json:"district_id" validate:"omitempty,max=50"`
	UpazilaID  string `json:"upazila_id" validate:"omitempty,max=50"`
}

// AdminUpdateUserRequest changes the fields only an admin may set.
type AdminUpdateUserRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=patient admin"`
	Status *bool   `json:"status"`
}

// UpdateUserRequest is the self-service profile update.
type UpdateUserRequest struct {
	DistrictID *string `json:"district_id" validate:"omitempty,max=50"`
	UpazilaID  *string `json:"upazila_id" validate:"omitempty,max=50"`
}

// Response DTOs

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  string    `json:"avatar_url"`
	BloodGroup string    `json:"blood_group"`
	Role       string    `json:"role"`
	Status     bool      `json:"status"`
	DistrictID string    `json:"district_id"`
	UpazilaID  string    `json:"upazila_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InsertResult reports an idempotent create. InsertedID is null when the
// record already existed.
type InsertResult struct {
	Acknowledged bool       `json:"acknowledged"`
	InsertedID   *uuid.UUID `json:"inserted_id"`
}
