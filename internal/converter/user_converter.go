package converter

import (
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		AvatarURL:  user.AvatarURL,
		BloodGroup: user.BloodGroup,
		Role:       string(user.Role),
		Status:     user.IsActive(),
		DistrictID: user.DistrictID,
		UpazilaID:  user.UpazilaID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// CreateUserRequestToEntity builds a new patient account. Role and status are
// always set by the server.
func CreateUserRequestToEntity(req *dto.CreateUserRequest) *entity.User {
	active := true
	return &entity.User{
		Email:      req.Email,
		Name:       req.Name,
		AvatarURL:  req.AvatarURL,
		BloodGroup: req.BloodGroup,
		Role:       entity.RolePatient,
		Status:     &active,
		DistrictID: req.DistrictID,
		UpazilaID:  req.UpazilaID,
	}
}
