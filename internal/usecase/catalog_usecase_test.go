package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/service"

	"github.com/shopspring/decimal"
)

func newCatalogFixture(appointments ...entity.Appointment) (*catalogUsecase, *fakeTestRepo) {
	appointmentRepo := newFakeAppointmentRepo(appointments...)
	testRepo := newFakeTestRepo(appointmentRepo, cbcTest, entity.DiagnosticTest{
		Slug:  "lipid",
		Title: "Lipid Profile",
		Slots: entity.SlotList{"08.00 - 09.00 AM"},
	})
	uc := NewCatalogUsecase(newTestLogger(), &fakeTransactor{}, testRepo, appointmentRepo).(*catalogUsecase)
	return uc, testRepo
}

func bookedAppointments() []entity.Appointment {
	return []entity.Appointment{
		{TestSlug: "cbc", BookingDate: "05-06-2024", BookingSlot: "10.00 - 11.00 AM", Status: entity.AppointmentStatusPending},
		{TestSlug: "cbc", BookingDate: "05-06-2024", BookingSlot: "09.00 - 10.00 AM", Status: entity.AppointmentStatusCancelled},
		{TestSlug: "cbc", BookingDate: "06-06-2024", BookingSlot: "11.00 - 12.00 PM", Status: entity.AppointmentStatusPending},
	}
}

func TestGetWithAvailability(t *testing.T) {
	uc, _ := newCatalogFixture(bookedAppointments()...)

	resp, err := uc.GetWithAvailability(context.Background(), "cbc", "05-06-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09.00 - 10.00 AM", "11.00 - 12.00 PM"}
	if !reflect.DeepEqual(resp.Slots, want) {
		t.Errorf("expected %v, got %v", want, resp.Slots)
	}
	if resp.AvailableSlots != 2 {
		t.Errorf("expected 2 available, got %d", resp.AvailableSlots)
	}
}

func TestAvailabilityPathsAgree(t *testing.T) {
	uc, _ := newCatalogFixture(bookedAppointments()...)
	ctx := context.Background()

	for _, date := range []string{"05-06-2024", "06-06-2024", "07-06-2024"} {
		listed, err := uc.ListWithAvailability(ctx, date)
		if err != nil {
			t.Fatalf("list %s: %v", date, err)
		}
		for _, item := range listed {
			single, err := uc.GetWithAvailability(ctx, item.Slug, date)
			if err != nil {
				t.Fatalf("get %s %s: %v", item.Slug, date, err)
			}
			if !reflect.DeepEqual(item.Slots, single.Slots) || item.AvailableSlots != single.AvailableSlots {
				t.Errorf("%s on %s: list=%v get=%v", item.Slug, date, item.Slots, single.Slots)
			}
		}
	}
}

func TestAvailability_InvalidDate(t *testing.T) {
	uc, _ := newCatalogFixture()

	if _, err := uc.ListWithAvailability(context.Background(), ""); !errors.Is(err, service.ErrInvalidBookingDate) {
		t.Errorf("expected ErrInvalidBookingDate, got %v", err)
	}
	if _, err := uc.GetWithAvailability(context.Background(), "cbc", "2024-06-05"); !errors.Is(err, service.ErrInvalidBookingDate) {
		t.Errorf("expected ErrInvalidBookingDate, got %v", err)
	}
	if _, err := uc.GetWithAvailability(context.Background(), "mri", "05-06-2024"); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("expected ErrTestNotFound, got %v", err)
	}
}

func TestCatalogCreate(t *testing.T) {
	uc, repo := newCatalogFixture()
	ctx := context.Background()

	req := &dto.CreateTestRequest{
		Slug:  "xray",
		Title: "Chest X-Ray",
		Price: decimal.RequireFromString("25.50"),
		Slots: []string{"02.00 - 03.00 PM"},
	}
	if _, err := uc.Create(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.tests["xray"]; !ok {
		t.Fatal("test not stored")
	}

	if _, err := uc.Create(ctx, req); !errors.Is(err, ErrTestSlugExists) {
		t.Errorf("expected ErrTestSlugExists, got %v", err)
	}

	bad := *req
	bad.Slug = "bad"
	bad.Slots = []string{"afternoon"}
	if _, err := uc.Create(ctx, &bad); !errors.Is(err, service.ErrInvalidSlotLabel) {
		t.Errorf("expected ErrInvalidSlotLabel, got %v", err)
	}

	negative := *req
	negative.Slug = "negative"
	negative.Price = decimal.NewFromInt(-1)
	if _, err := uc.Create(ctx, &negative); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("expected ErrNegativePrice, got %v", err)
	}
}

func TestCatalogUpsert(t *testing.T) {
	uc, repo := newCatalogFixture()
	ctx := context.Background()

	updated, err := uc.Upsert(ctx, "cbc", &dto.UpsertTestRequest{Title: strPtr("CBC")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Upserted {
		t.Error("existing slug must not be reported as upserted")
	}
	if got := repo.tests["cbc"]; got.Title != "CBC" || len(got.Slots) != 3 {
		t.Errorf("unexpected stored test: %+v", got)
	}

	created, err := uc.Upsert(ctx, "ecg", &dto.UpsertTestRequest{
		Title: strPtr("ECG"),
		Slots: []string{"09.00 - 10.00 AM"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !created.Upserted || created.Test.Slug != "ecg" {
		t.Errorf("expected upserted ecg, got %+v", created)
	}
}

func TestCatalogDelete(t *testing.T) {
	uc, repo := newCatalogFixture()

	if _, err := uc.Delete(context.Background(), "cbc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.tests["cbc"]; ok {
		t.Error("test still stored")
	}
	if _, err := uc.Delete(context.Background(), "cbc"); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("expected ErrTestNotFound, got %v", err)
	}
}
