package repository

import (
	"context"
	"errors"
	"time"

	"diagnostic-center-api/internal/domain/entity"
	domainRepo "diagnostic-center-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return conn(ctx, r.db).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := conn(ctx, r.db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := conn(ctx, r.db).Order("start_appointment DESC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindUpcomingByEmail returns appointments whose start is at or after now.
// Past appointments are filtered out, never deleted.
func (r *appointmentRepository) FindUpcomingByEmail(ctx context.Context, email string, now time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := conn(ctx, r.db).
		Where("user_email = ? AND start_appointment >= ?", email, now.UTC()).
		Order("start_appointment ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByUserAndSlot ignores cancelled appointments so a user can book a slot
// again after cancelling.
func (r *appointmentRepository) FindByUserAndSlot(ctx context.Context, email, bookingDate, bookingSlot string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := conn(ctx, r.db).
		Where("user_email = ? AND booking_date = ? AND booking_slot = ? AND status != ?",
			email, bookingDate, bookingSlot, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByTestAndDate(ctx context.Context, testSlug, bookingDate string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := conn(ctx, r.db).
		Where("test_slug = ? AND booking_date = ? AND status != ?", testSlug, bookingDate, entity.AppointmentStatusCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return conn(ctx, r.db).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
