package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booking of one test slot on one date. UserEmail and
// TestSlug are plain references without foreign keys.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserEmail        string            `gorm:"type:varchar(255);not null;index" json:"user_email"`
	UserName         string            `gorm:"type:varchar(255)" json:"user_name"`
	TestSlug         string            `gorm:"type:varchar(150);not null;index" json:"test_slug"`
	TestTitle        string            `gorm:"type:varchar(255)" json:"test_title"`
	Price            decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	BookingDate      string            `gorm:"type:varchar(10);not null" json:"booking_date"`
	BookingSlot      string            `gorm:"type:varchar(50);not null" json:"booking_slot"`
	StartAppointment time.Time         `gorm:"type:timestamptz;not null;index" json:"start_appointment"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus    bool              `gorm:"not null;default:false" json:"payment_status"`
	PaymentID        string            `gorm:"type:varchar(255)" json:"payment_id"`
	TestResult       string            `gorm:"type:text" json:"test_result"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// MarkPaid records a confirmed payment on the appointment.
func (a *Appointment) MarkPaid(transactionID string) {
	a.PaymentStatus = true
	a.PaymentID = transactionID
}
