package converter

import (
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		TransactionID: payment.TransactionID,
		Email:         payment.Email,
		Price:         payment.Price,
		Metadata:      payment.Metadata,
		CreatedAt:     payment.CreatedAt,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
