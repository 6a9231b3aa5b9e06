package repository

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/domain/entity"
	domainRepo "diagnostic-center-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) domainRepo.BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	return conn(ctx, r.db).Create(banner).Error
}

func (r *bannerRepository) FindAll(ctx context.Context) ([]entity.Banner, error) {
	var banners []entity.Banner
	if err := conn(ctx, r.db).Order("created_at DESC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var banner entity.Banner
	err := conn(ctx, r.db).Where("id = ?", id).First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) FindActive(ctx context.Context) (*entity.Banner, error) {
	var banner entity.Banner
	err := conn(ctx, r.db).Where("is_active = ?", true).First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// activateLockKey serializes activations across connections.
const activateLockKey = "banners.activate"

var errNoBannerActivated = errors.New("no banner activated")

// Activate deactivates every other banner, then activates id. It returns the
// number of rows activated; for an unknown id it is 0 and nothing changes.
func (r *bannerRepository) Activate(ctx context.Context, id uuid.UUID) (int64, error) {
	var activated int64
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", activateLockKey).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"UPDATE banners SET is_active = FALSE, updated_at = NOW() WHERE is_active AND id <> ?", id,
		).Error; err != nil {
			return err
		}
		result := tx.Exec("UPDATE banners SET is_active = TRUE, updated_at = NOW() WHERE id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNoBannerActivated
		}
		activated = result.RowsAffected
		return nil
	})
	if errors.Is(err, errNoBannerActivated) {
		return 0, nil
	}
	return activated, err
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Banner{})
	return result.RowsAffected, result.Error
}
