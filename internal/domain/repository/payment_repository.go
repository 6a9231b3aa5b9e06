package repository

import (
	"context"

	"diagnostic-center-api/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByEmail(ctx context.Context, email string) ([]entity.Payment, error)
}
