package repository

import (
	"context"
	"time"

	"diagnostic-center-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindUpcomingByEmail(ctx context.Context, email string, now time.Time) ([]entity.Appointment, error)
	FindByUserAndSlot(ctx context.Context, email, bookingDate, bookingSlot string) (*entity.Appointment, error)
	FindActiveByTestAndDate(ctx context.Context, testSlug, bookingDate string) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
