package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is created on first sign-in and keyed by email.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	AvatarURL  string    `gorm:"type:text" json:"avatar_url"`
	BloodGroup string    `gorm:"type:varchar(8)" json:"blood_group"`
	Role       UserRole  `gorm:"type:varchar(20);not null;default:'patient'" json:"role"`
	Status     *bool     `gorm:"not null;default:true" json:"status"`
	DistrictID string    `gorm:"type:varchar(50)" json:"district_id"`
	UpazilaID  string    `gorm:"type:varchar(50)" json:"upazila_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsActive treats a missing status as active.
func (u *User) IsActive() bool {
	return u.Status == nil || *u.Status
}
