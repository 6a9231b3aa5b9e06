package repository

import (
	"context"

	"diagnostic-center-api/internal/domain/entity"
)

type DiagnosticTestRepository interface {
	Create(ctx context.Context, test *entity.DiagnosticTest) error
	FindBySlug(ctx context.Context, slug string) (*entity.DiagnosticTest, error)
	// FindAllWithAvailability computes the remaining slots of every test for
	// bookingDate in the database.
	FindAllWithAvailability(ctx context.Context, bookingDate string) ([]entity.TestAvailability, error)
	Update(ctx context.Context, test *entity.DiagnosticTest) error
	Delete(ctx context.Context, slug string) (int64, error)
}
