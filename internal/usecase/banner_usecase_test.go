package usecase

import (
	"context"
	"errors"
	"testing"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestBannerCreate_StartsInactive(t *testing.T) {
	repo := newFakeBannerRepo()
	uc := NewBannerUsecase(newTestLogger(), &fakeTransactor{}, repo)

	resp, err := uc.Create(context.Background(), &dto.CreateBannerRequest{Title: "Eid offer", DiscountRate: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsActive || repo.activeCount() != 0 {
		t.Error("new banner must be inactive")
	}
}

func TestBannerActivate_LeavesOneActive(t *testing.T) {
	b1 := entity.Banner{ID: uuid.New(), Title: "B1", IsActive: true}
	b2 := entity.Banner{ID: uuid.New(), Title: "B2"}
	b3 := entity.Banner{ID: uuid.New(), Title: "B3"}
	repo := newFakeBannerRepo(b1, b2, b3)
	tx := &fakeTransactor{}
	uc := NewBannerUsecase(newTestLogger(), tx, repo)

	resp, err := uc.Activate(context.Background(), b2.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsActive || resp.ID != b2.ID {
		t.Errorf("unexpected response: %+v", resp)
	}
	if repo.activeCount() != 1 || !repo.banners[b2.ID].IsActive {
		t.Errorf("expected only B2 active, got %d active", repo.activeCount())
	}
	if tx.calls != 1 {
		t.Errorf("expected activation inside a transaction, got %d calls", tx.calls)
	}

	active, err := uc.GetActive(context.Background())
	if err != nil || active.ID != b2.ID {
		t.Errorf("expected B2 as active banner, got %+v (%v)", active, err)
	}
}

func TestBannerActivate_UnknownLeavesStateAlone(t *testing.T) {
	b1 := entity.Banner{ID: uuid.New(), IsActive: true}
	repo := newFakeBannerRepo(b1)
	uc := NewBannerUsecase(newTestLogger(), &fakeTransactor{}, repo)

	if _, err := uc.Activate(context.Background(), uuid.New()); !errors.Is(err, ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
	if !repo.banners[b1.ID].IsActive {
		t.Error("active banner must stay active")
	}
}

func TestBannerGetActive_None(t *testing.T) {
	uc := NewBannerUsecase(newTestLogger(), &fakeTransactor{}, newFakeBannerRepo(entity.Banner{ID: uuid.New()}))

	if _, err := uc.GetActive(context.Background()); !errors.Is(err, ErrNoActiveBanner) {
		t.Fatalf("expected ErrNoActiveBanner, got %v", err)
	}
}

func TestBannerDelete(t *testing.T) {
	b := entity.Banner{ID: uuid.New()}
	repo := newFakeBannerRepo(b)
	uc := NewBannerUsecase(newTestLogger(), &fakeTransactor{}, repo)

	if _, err := uc.Delete(context.Background(), b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Delete(context.Background(), b.ID); !errors.Is(err, ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
}
