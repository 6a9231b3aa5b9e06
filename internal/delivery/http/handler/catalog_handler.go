package handler

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/service"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// CreateTest handles catalog creation
// @Summary Add a test to the catalog
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.CreateTestRequest true "Test"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tests [post]
func (h *CatalogHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	test, err := h.catalogUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTestSlugExists:
			response.Conflict(w, "A test already exists with the slug "+req.Slug)
		default:
			h.writeError(w, err, "Failed to add test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test added successfully", test)
}

// ListTests handles GET /tests?date=dd-mm-yyyy
func (h *CatalogHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	tests, err := h.catalogUsecase.ListWithAvailability(r.Context(), date)
	if err != nil {
		h.writeError(w, err, "Failed to get tests")
		return
	}

	response.Success(w, http.StatusOK, "", tests)
}

func (h *CatalogHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	test, err := h.catalogUsecase.GetWithAvailability(r.Context(), vars["slug"], vars["date"])
	if err != nil {
		h.writeError(w, err, "Failed to get test")
		return
	}

	response.Success(w, http.StatusOK, "", test)
}

func (h *CatalogHandler) UpsertTest(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.catalogUsecase.Upsert(r.Context(), mux.Vars(r)["slug"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to update test")
		return
	}

	response.Success(w, http.StatusOK, "Test updated successfully", result)
}

func (h *CatalogHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogUsecase.Delete(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, err, "Failed to delete test")
		return
	}

	response.Success(w, http.StatusOK, "Test deleted successfully", result)
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTestNotFound:
		response.NotFound(w, "Test not found")
	case usecase.ErrTestSlugExists:
		response.Conflict(w, "A test already exists with this slug")
	case usecase.ErrNegativePrice:
		response.BadRequest(w, "Price must not be negative")
	case service.ErrInvalidBookingDate, service.ErrInvalidSlotLabel:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
