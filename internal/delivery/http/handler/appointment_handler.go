package handler

import (
	"fmt"
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/delivery/http/middleware"
	"diagnostic-center-api/internal/service"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// BookAppointment handles booking
// @Summary Book a test slot
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Booking"
// @Success 201 {object} response.Response
// @Success 200 {object} response.Response "duplicate booking"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	email, _ := middleware.GetUserEmailFromContext(r.Context())
	if req.UserEmail != email {
		response.Forbidden(w, "You can only book appointments for yourself")
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAlreadyBooked:
			// Duplicates keep a success-shaped 200 reply without a result.
			response.Success(w, http.StatusOK, fmt.Sprintf("You already have a booking on %s at %s", req.BookingDate, req.BookingSlot), nil)
		case service.ErrInvalidBookingDate, service.ErrInvalidSlotLabel:
			response.BadRequest(w, err.Error())
		case usecase.ErrAppointmentPast:
			response.BadRequest(w, "Cannot book a slot that has already started")
		case usecase.ErrSlotNotOffered:
			response.BadRequest(w, "The test does not offer this slot")
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrSlotUnavailable:
			response.Conflict(w, "Slot is already booked")
		case service.ErrSlotLocked:
			response.Conflict(w, "Slot is being booked by another request, try again")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

// GetUpcomingAppointments lists the caller's appointments that have not
// started yet.
func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListUpcoming(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

func (h *AppointmentHandler) AdminUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.AdminUpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.AdminUpdate(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrSlotUnavailable:
			response.Conflict(w, "Slot is already booked")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	email, _ := middleware.GetUserEmailFromContext(r.Context())

	result, err := h.appointmentUsecase.Delete(r.Context(), id, email)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", result)
}
