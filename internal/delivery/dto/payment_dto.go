package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

type ConfirmPaymentRequest struct {
	AppointmentID string                 `json:"appointment_id" validate:"required,uuid"`
	TransactionID string                 `json:"transaction_id" validate:"required,max=255"`
	Email         string                 `json:"email" validate:"required,email"`
	Price         decimal.Decimal        `json:"price"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// Response DTOs

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type PaymentResponse struct {
	ID            uuid.UUID              `json:"id"`
	AppointmentID uuid.UUID              `json:"appointment_id"`
	TransactionID string                 `json:"transaction_id"`
	Email         string                 `json:"email"`
	Price         decimal.Decimal        `json:"price"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
