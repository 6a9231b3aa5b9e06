package handler

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/delivery/http/middleware"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	intent, err := h.paymentUsecase.CreateIntent(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, "Invalid price provided")
		case usecase.ErrPaymentGateway:
			response.BadGateway(w, "Payment processor failed")
		default:
			response.InternalServerError(w, "Failed to create payment intent")
		}
		return
	}

	response.Success(w, http.StatusOK, "", intent)
}

// ConfirmPayment records a completed payment against the caller's
// appointment.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	email, _ := middleware.GetUserEmailFromContext(r.Context())
	if req.Email != email {
		response.Forbidden(w, "You can only record your own payments")
		return
	}

	payment, err := h.paymentUsecase.Confirm(r.Context(), email, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPrice:
			response.BadRequest(w, "Invalid price provided")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrPaymentAlreadyRecorded:
			response.Conflict(w, "Payment is already recorded")
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment successful", payment)
}

func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentUsecase.History(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "", payments)
}
