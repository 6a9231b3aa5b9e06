package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	UserEmail   string `json:"user_email" validate:"required,email"`
	UserName    string `json:"user_name" validate:"omitempty,max=255"`
	TestSlug    string `json:"test_slug" validate:"required,max=150"`
	BookingDate string `json:"booking_date" validate:"required,booking_date"`
	BookingSlot string `json:"booking_slot" validate:"required,max=50"`
}

type AdminUpdateAppointmentRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	TestResult *string `json:"test_result"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	UserEmail        string          `json:"user_email"`
	UserName         string          `json:"user_name"`
	TestSlug         string          `json:"test_slug"`
	TestTitle        string          `json:"test_title"`
	Price            decimal.Decimal `json:"price"`
	BookingDate      string          `json:"booking_date"`
	BookingSlot      string          `json:"booking_slot"`
	StartAppointment time.Time       `json:"start_appointment"`
	Status           string          `json:"status"`
	PaymentStatus    bool            `json:"payment_status"`
	PaymentID        string          `json:"payment_id,omitempty"`
	TestResult       string          `json:"test_result,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
