package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTestRequest struct {
	Slug            string          `json:"slug" validate:"required,max=150"`
	Title           string          `json:"title" validate:"required,max=255"`
	Description     string          `json:"description"`
	Image           string          `json:"image" validate:"omitempty,url"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent int             `json:"discount_percent" validate:"gte=0,lte=100"`
	PromoCode       string          `json:"promo_code" validate:"omitempty,max=50"`
	Slots           []string        `json:"slots" validate:"required,min=1,unique,dive,required,max=50"`
}

// UpsertTestRequest is a partial update; nil fields are left unchanged.
type UpsertTestRequest struct {
	Title           *string          `json:"title" validate:"omitempty,max=255"`
	Description     *string          `json:"description"`
	Image           *string          `json:"image" validate:"omitempty,url"`
	Price           *decimal.Decimal `json:"price"`
	DiscountPercent *int             `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	PromoCode       *string          `json:"promo_code" validate:"omitempty,max=50"`
	Slots           []string         `json:"slots" validate:"omitempty,unique,dive,required,max=50"`
}

// Response DTOs

type TestResponse struct {
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent int             `json:"discount_percent"`
	PromoCode       string          `json:"promo_code"`
	Slots           []string        `json:"slots"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TestAvailabilityResponse is a test whose Slots hold only the labels still
// free on the requested date.
type TestAvailabilityResponse struct {
	TestResponse
	BookingDate    string `json:"booking_date"`
	AvailableSlots int    `json:"available_slots"`
}

type TestUpsertResponse struct {
	Upserted bool          `json:"upserted"`
	Test     *TestResponse `json:"test"`
}
