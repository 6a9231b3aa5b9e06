package converter

import (
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
)

func TestToResponse(test *entity.DiagnosticTest) *dto.TestResponse {
	if test == nil {
		return nil
	}

	slots := []string(test.Slots)
	if slots == nil {
		slots = []string{}
	}

	return &dto.TestResponse{
		Slug:            test.Slug,
		Title:           test.Title,
		Description:     test.Description,
		Image:           test.Image,
		Price:           test.Price,
		DiscountPercent: test.DiscountPercent,
		PromoCode:       test.PromoCode,
		Slots:           slots,
		CreatedAt:       test.CreatedAt,
		UpdatedAt:       test.UpdatedAt,
	}
}

// AvailabilityToResponse replaces the catalog slots with the remaining ones.
func AvailabilityToResponse(availability *entity.TestAvailability, bookingDate string) *dto.TestAvailabilityResponse {
	base := TestToResponse(&availability.Test)
	remaining := availability.RemainingSlots
	if remaining == nil {
		remaining = []string{}
	}
	base.Slots = remaining

	return &dto.TestAvailabilityResponse{
		TestResponse:   *base,
		BookingDate:    bookingDate,
		AvailableSlots: len(remaining),
	}
}

func AvailabilitiesToResponses(availabilities []entity.TestAvailability, bookingDate string) []dto.TestAvailabilityResponse {
	responses := make([]dto.TestAvailabilityResponse, len(availabilities))
	for i := range availabilities {
		responses[i] = *AvailabilityToResponse(&availabilities[i], bookingDate)
	}
	return responses
}

func CreateTestRequestToEntity(req *dto.CreateTestRequest) *entity.DiagnosticTest {
	return &entity.DiagnosticTest{
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		PromoCode:       req.PromoCode,
		Slots:           entity.SlotList(req.Slots),
	}
}

// ApplyTestUpsert copies the non-nil fields of req onto test.
func ApplyTestUpsert(test *entity.DiagnosticTest, req *dto.UpsertTestRequest) {
	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.Image != nil {
		test.Image = *req.Image
	}
	if req.Price != nil {
		test.Price = *req.Price
	}
	if req.DiscountPercent != nil {
		test.DiscountPercent = *req.DiscountPercent
	}
	if req.PromoCode != nil {
		test.PromoCode = *req.PromoCode
	}
	if req.Slots != nil {
		test.Slots = entity.SlotList(req.Slots)
	}
}
