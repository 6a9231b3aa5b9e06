package usecase

import (
	"context"
	"errors"
	"time"

	"diagnostic-center-api/internal/converter"
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/domain/repository"
	"diagnostic-center-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrAlreadyBooked       = errors.New("you already have a booking for this slot")
	ErrSlotNotOffered      = errors.New("the test does not offer this slot")
	ErrSlotUnavailable     = errors.New("slot is already booked")
	ErrAppointmentPast     = errors.New("cannot book a slot that has already started")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListUpcoming(ctx context.Context, email string) ([]dto.AppointmentResponse, error)
	ListAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID, callerEmail string) (*dto.DeleteResult, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	testRepo        repository.DiagnosticTestRepository
	slotLocker      service.SlotLocker
	location        *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	testRepo repository.DiagnosticTestRepository,
	slotLocker service.SlotLocker,
	location *time.Location,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		testRepo:        testRepo,
		slotLocker:      slotLocker,
		location:        location,
		now:             time.Now,
	}
}

// Book creates a pending appointment.
//
// Flow:
// 1. Resolve the start time from date and slot label, refuse slots already started
// 2. Check the test exists and offers the slot
// 3. Take the Redis slot lock so concurrent requests for the slot serialize
// 4. Reject the caller's own duplicate with ErrAlreadyBooked
// 5. Check nobody else holds the slot, then insert
//
// The partial unique indexes on live slots and on the caller's live
// bookings back up steps 4 and 5.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	start, err := service.ResolveAppointmentStart(req.BookingSlot, req.BookingDate, u.location)
	if err != nil {
		return nil, err
	}
	if start.Before(u.now()) {
		return nil, ErrAppointmentPast
	}

	test, err := u.testRepo.FindBySlug(ctx, req.TestSlug)
	if err != nil {
		u.log.Warnf("Failed to find test %s: %+v", req.TestSlug, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	if !test.OffersSlot(req.BookingSlot) {
		return nil, ErrSlotNotOffered
	}

	release, err := u.slotLocker.Acquire(ctx, req.TestSlug, req.BookingDate, req.BookingSlot)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := u.appointmentRepo.FindByUserAndSlot(ctx, req.UserEmail, req.BookingDate, req.BookingSlot)
	if err != nil {
		u.log.Warnf("Failed to check existing booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	live, err := u.appointmentRepo.FindActiveByTestAndDate(ctx, req.TestSlug, req.BookingDate)
	if err != nil {
		u.log.Warnf("Failed to find appointments of %s on %s: %+v", req.TestSlug, req.BookingDate, err)
		return nil, err
	}
	for _, slot := range service.BookedSlots(live) {
		if slot == req.BookingSlot {
			return nil, ErrSlotUnavailable
		}
	}

	appointment := &entity.Appointment{
		UserEmail:        req.UserEmail,
		UserName:         req.UserName,
		TestSlug:         test.Slug,
		TestTitle:        test.Title,
		Price:            test.Price,
		BookingDate:      req.BookingDate,
		BookingSlot:      req.BookingSlot,
		StartAppointment: start,
		Status:           entity.AppointmentStatusPending,
		PaymentStatus:    false,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "live_slot") {
			return nil, ErrSlotUnavailable
		}
		// The slot lock is per test, so the same user booking another test
		// at this date and slot concurrently is only caught here.
		if isDuplicateKeyError(err, "user_slot") {
			return nil, ErrAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, test=%s, date=%s, slot=%s", appointment.ID, appointment.TestSlug, appointment.BookingDate, appointment.BookingSlot)
	return converter.AppointmentToResponse(appointment), nil
}

// ListUpcoming excludes appointments that already started, including earlier
// slots of today.
func (u *appointmentUsecase) ListUpcoming(ctx context.Context, email string) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcomingByEmail(ctx, email, u.now().UTC())
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", email, err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) AdminUpdate(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.TestResult != nil {
		appointment.TestResult = *req.TestResult
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		// Reviving a cancelled appointment whose slot was rebooked.
		if isDuplicateKeyError(err, "live_slot") || isDuplicateKeyError(err, "user_slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment updated: id=%s, status=%s", appointment.ID, appointment.Status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID, callerEmail string) (*dto.DeleteResult, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.UserEmail != callerEmail {
		return nil, ErrAppointmentNotOwned
	}

	deleted, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
