package handler

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BannerHandler struct {
	bannerUsecase usecase.BannerUsecase
	validator     *validator.CustomValidator
}

func NewBannerHandler(bannerUsecase usecase.BannerUsecase, validator *validator.CustomValidator) *BannerHandler {
	return &BannerHandler{
		bannerUsecase: bannerUsecase,
		validator:     validator,
	}
}

func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBannerRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	banner, err := h.bannerUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add banner")
		return
	}

	response.Success(w, http.StatusCreated, "New banner added successfully", banner)
}

func (h *BannerHandler) GetAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get banners")
		return
	}

	response.Success(w, http.StatusOK, "All banners retrieved successfully", banners)
}

func (h *BannerHandler) GetActiveBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.bannerUsecase.GetActive(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNoActiveBanner:
			response.NotFound(w, "No banner is active")
		default:
			response.InternalServerError(w, "Failed to get active banner")
		}
		return
	}

	response.Success(w, http.StatusOK, "", banner)
}

func (h *BannerHandler) ActivateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBannerID(w, r)
	if !ok {
		return
	}

	banner, err := h.bannerUsecase.Activate(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBannerNotFound:
			response.NotFound(w, "Banner not found")
		default:
			response.InternalServerError(w, "Failed to activate banner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Banner activated successfully", banner)
}

func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBannerID(w, r)
	if !ok {
		return
	}

	result, err := h.bannerUsecase.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBannerNotFound:
			response.NotFound(w, "Banner not found")
		default:
			response.InternalServerError(w, "Failed to delete banner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Banner deleted successfully", result)
}

func parseBannerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid banner ID")
		return uuid.Nil, false
	}
	return id, true
}
