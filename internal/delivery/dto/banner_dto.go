package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBannerRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	Image        string `json:"image" validate:"omitempty,url"`
	CouponCode   string `json:"coupon_code" validate:"omitempty,max=50"`
	DiscountRate int    `json:"discount_rate" validate:"gte=0,lte=100"`
}

// Response DTOs

type BannerResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CouponCode   string    `json:"coupon_code"`
	DiscountRate int       `json:"discount_rate"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
