package handler

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// IssueToken handles token issuance
// @Summary Issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Token Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	token, err := h.authUsecase.IssueToken(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.Success(w, http.StatusOK, "Token issued successfully", token)
}

// IsAdmin handles the admin check of the caller
// @Summary Check whether the caller is an admin
// @Tags Auth
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /is_admin/{email} [get]
func (h *AuthHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.authUsecase.IsAdmin(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to check admin status")
		return
	}

	response.Success(w, http.StatusOK, "", result)
}
