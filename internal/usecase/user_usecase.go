package usecase

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/converter"
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.InsertResult, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	AdminUpdate(ctx context.Context, email string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		log:      log,
		userRepo: userRepo,
	}
}

// Create is idempotent by email. An existing account is returned untouched
// with a nil InsertedID.
func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.InsertResult, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return &dto.InsertResult{Acknowledged: true}, nil
	}

	user := converter.CreateUserRequestToEntity(req)
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent sign-in of the same email.
		if isDuplicateKeyError(err, "email") {
			return &dto.InsertResult{Acknowledged: true}, nil
		}
		u.log.Warnf("Failed to create user %s: %+v", req.Email, err)
		return nil, err
	}

	u.log.Infof("User created: email=%s", user.Email)
	return &dto.InsertResult{Acknowledged: true, InsertedID: &user.ID}, nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) AdminUpdate(ctx context.Context, email string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Status != nil {
		status := *req.Status
		user.Status = &status
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", email, err)
		return nil, err
	}

	u.log.Infof("User updated by admin: email=%s, role=%s, active=%t", user.Email, user.Role, user.IsActive())
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, email string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.DistrictID != nil {
		user.DistrictID = *req.DistrictID
	}
	if req.UpazilaID != nil {
		user.UpazilaID = *req.UpazilaID
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", email, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) findUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", email, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
