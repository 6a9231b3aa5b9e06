package converter

import (
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		UserEmail:        appointment.UserEmail,
		UserName:         appointment.UserName,
		TestSlug:         appointment.TestSlug,
		TestTitle:        appointment.TestTitle,
		Price:            appointment.Price,
		BookingDate:      appointment.BookingDate,
		BookingSlot:      appointment.BookingSlot,
		StartAppointment: appointment.StartAppointment,
		Status:           string(appointment.Status),
		PaymentStatus:    appointment.PaymentStatus,
		PaymentID:        appointment.PaymentID,
		TestResult:       appointment.TestResult,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
