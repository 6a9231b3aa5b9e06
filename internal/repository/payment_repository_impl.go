package repository

import (
	"context"

	"diagnostic-center-api/internal/domain/entity"
	domainRepo "diagnostic-center-api/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return conn(ctx, r.db).Create(payment).Error
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := conn(ctx, r.db).Where("email = ?", email).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
