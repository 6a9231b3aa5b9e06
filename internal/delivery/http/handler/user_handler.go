package handler

import (
	"net/http"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/usecase"
	"diagnostic-center-api/pkg/response"
	"diagnostic-center-api/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// CreateUser is idempotent: an existing email answers 200 with a null
// inserted_id instead of 201.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create user")
		return
	}

	if result.InsertedID == nil {
		response.Success(w, http.StatusOK, "User already exists", result)
		return
	}
	response.Success(w, http.StatusCreated, "Account created successfully", result)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.writeError(w, err, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User found successfully", user)
}

func (h *UserHandler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminUpdateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.AdminUpdate(r.Context(), mux.Vars(r)["email"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), mux.Vars(r)["email"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to update user info")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrUserNotFound:
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
