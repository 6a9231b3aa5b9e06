package usecase

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/converter"
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/domain/repository"
	"diagnostic-center-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrTestNotFound   = errors.New("test not found")
	ErrTestSlugExists = errors.New("a test already exists with this slug")
	ErrNegativePrice  = errors.New("price must not be negative")
)

type CatalogUsecase interface {
	Create(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	ListWithAvailability(ctx context.Context, bookingDate string) ([]dto.TestAvailabilityResponse, error)
	GetWithAvailability(ctx context.Context, slug, bookingDate string) (*dto.TestAvailabilityResponse, error)
	Upsert(ctx context.Context, slug string, req *dto.UpsertTestRequest) (*dto.TestUpsertResponse, error)
	Delete(ctx context.Context, slug string) (*dto.DeleteResult, error)
}

type catalogUsecase struct {
	log             *logrus.Logger
	transactor      repository.Transactor
	testRepo        repository.DiagnosticTestRepository
	appointmentRepo repository.AppointmentRepository
}

func NewCatalogUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	testRepo repository.DiagnosticTestRepository,
	appointmentRepo repository.AppointmentRepository,
) CatalogUsecase {
	return &catalogUsecase{
		log:             log,
		transactor:      transactor,
		testRepo:        testRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *catalogUsecase) Create(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	if err := validateCatalogFields(req.Price, req.Slots); err != nil {
		return nil, err
	}

	existing, err := u.testRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		u.log.Warnf("Failed to find test %s: %+v", req.Slug, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTestSlugExists
	}

	test := converter.CreateTestRequestToEntity(req)
	if err := u.testRepo.Create(ctx, test); err != nil {
		if isDuplicateKeyError(err, "tests_pkey") {
			return nil, ErrTestSlugExists
		}
		u.log.Warnf("Failed to create test %s: %+v", req.Slug, err)
		return nil, err
	}

	u.log.Infof("Test created: slug=%s, slots=%d", test.Slug, len(test.Slots))
	return converter.TestToResponse(test), nil
}

// ListWithAvailability computes remaining slots for every test in one query.
func (u *catalogUsecase) ListWithAvailability(ctx context.Context, bookingDate string) ([]dto.TestAvailabilityResponse, error) {
	if _, err := service.ParseBookingDate(bookingDate); err != nil {
		return nil, err
	}

	availabilities, err := u.testRepo.FindAllWithAvailability(ctx, bookingDate)
	if err != nil {
		u.log.Warnf("Failed to list tests for %s: %+v", bookingDate, err)
		return nil, err
	}

	return converter.AvailabilitiesToResponses(availabilities, bookingDate), nil
}

// GetWithAvailability computes remaining slots of one test in Go from its
// live appointments. It must agree with ListWithAvailability.
func (u *catalogUsecase) GetWithAvailability(ctx context.Context, slug, bookingDate string) (*dto.TestAvailabilityResponse, error) {
	if _, err := service.ParseBookingDate(bookingDate); err != nil {
		return nil, err
	}

	test, err := u.testRepo.FindBySlug(ctx, slug)
	if err != nil {
		u.log.Warnf("Failed to find test %s: %+v", slug, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	appointments, err := u.appointmentRepo.FindActiveByTestAndDate(ctx, slug, bookingDate)
	if err != nil {
		u.log.Warnf("Failed to find appointments of %s on %s: %+v", slug, bookingDate, err)
		return nil, err
	}

	availability := &entity.TestAvailability{
		Test:           *test,
		RemainingSlots: service.RemainingSlots(test.Slots, service.BookedSlots(appointments)),
	}
	return converter.AvailabilityToResponse(availability, bookingDate), nil
}

// Upsert applies a partial update and creates the test when slug is unknown.
func (u *catalogUsecase) Upsert(ctx context.Context, slug string, req *dto.UpsertTestRequest) (*dto.TestUpsertResponse, error) {
	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}
	if err := validateCatalogFields(price, req.Slots); err != nil {
		return nil, err
	}

	var (
		test     *entity.DiagnosticTest
		upserted bool
	)
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := u.testRepo.FindBySlug(ctx, slug)
		if err != nil {
			return err
		}

		if existing == nil {
			test = &entity.DiagnosticTest{Slug: slug, Slots: entity.SlotList{}}
			converter.ApplyTestUpsert(test, req)
			upserted = true
			return u.testRepo.Create(ctx, test)
		}

		test = existing
		converter.ApplyTestUpsert(test, req)
		return u.testRepo.Update(ctx, test)
	})
	if err != nil {
		if isDuplicateKeyError(err, "tests_pkey") {
			return nil, ErrTestSlugExists
		}
		u.log.Warnf("Failed to upsert test %s: %+v", slug, err)
		return nil, err
	}

	u.log.Infof("Test upserted: slug=%s, created=%t", slug, upserted)
	return &dto.TestUpsertResponse{
		Upserted: upserted,
		Test:     converter.TestToResponse(test),
	}, nil
}

func (u *catalogUsecase) Delete(ctx context.Context, slug string) (*dto.DeleteResult, error) {
	deleted, err := u.testRepo.Delete(ctx, slug)
	if err != nil {
		u.log.Warnf("Failed to delete test %s: %+v", slug, err)
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrTestNotFound
	}

	u.log.Infof("Test deleted: slug=%s", slug)
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}

// validateCatalogFields rejects slot labels that could never be booked.
func validateCatalogFields(price decimal.Decimal, slots []string) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	for _, slot := range slots {
		if _, _, err := service.ResolveSlotStart(slot); err != nil {
			return err
		}
	}
	return nil
}
