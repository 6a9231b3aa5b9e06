package usecase

import (
	"context"
	"errors"
	"strings"

	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/repository"
	"diagnostic-center-api/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	IsAdmin(ctx context.Context, email string) (*dto.AdminCheckResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(log *logrus.Logger, userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// IssueToken signs a token for an email the client already authenticated
// with its identity provider.
func (u *authUsecase) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	token, err := u.jwtService.GenerateToken(req.Email)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

// IsAdmin reports false for unknown emails.
func (u *authUsecase) IsAdmin(ctx context.Context, email string) (*dto.AdminCheckResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", email, err)
		return nil, err
	}

	return &dto.AdminCheckResponse{Admin: user.IsAdmin()}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint or index whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
