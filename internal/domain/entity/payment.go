package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an append-only log entry of a confirmed payment.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	TransactionID string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"transaction_id"`
	Email         string          `gorm:"type:varchar(255);index" json:"email"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Metadata      JSON            `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
