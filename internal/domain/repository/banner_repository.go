package repository

import (
	"context"

	"diagnostic-center-api/internal/domain/entity"

	"github.com/google/uuid"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	FindAll(ctx context.Context) ([]entity.Banner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	FindActive(ctx context.Context) (*entity.Banner, error)
	// Activate sets is_active on id and clears it on every other banner in a
	// single statement.
	Activate(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
