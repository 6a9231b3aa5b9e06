package usecase

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/converter"
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBannerNotFound = errors.New("banner not found")
	ErrNoActiveBanner = errors.New("no banner is active")
)

type BannerUsecase interface {
	Create(ctx context.Context, req *dto.CreateBannerRequest) (*dto.BannerResponse, error)
	GetAll(ctx context.Context) ([]dto.BannerResponse, error)
	GetActive(ctx context.Context) (*dto.BannerResponse, error)
	Activate(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteResult, error)
}

type bannerUsecase struct {
	log        *logrus.Logger
	transactor repository.Transactor
	bannerRepo repository.BannerRepository
}

func NewBannerUsecase(log *logrus.Logger, transactor repository.Transactor, bannerRepo repository.BannerRepository) BannerUsecase {
	return &bannerUsecase{
		log:        log,
		transactor: transactor,
		bannerRepo: bannerRepo,
	}
}

// Create stores a new banner. New banners are never active.
func (u *bannerUsecase) Create(ctx context.Context, req *dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	banner := converter.CreateBannerRequestToEntity(req)
	if err := u.bannerRepo.Create(ctx, banner); err != nil {
		u.log.Warnf("Failed to create banner: %+v", err)
		return nil, err
	}

	u.log.Infof("Banner created: id=%s", banner.ID)
	return converter.BannerToResponse(banner), nil
}

func (u *bannerUsecase) GetAll(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := u.bannerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find banners: %+v", err)
		return nil, err
	}
	return converter.BannersToResponses(banners), nil
}

func (u *bannerUsecase) GetActive(ctx context.Context) (*dto.BannerResponse, error) {
	banner, err := u.bannerRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to find active banner: %+v", err)
		return nil, err
	}
	if banner == nil {
		return nil, ErrNoActiveBanner
	}
	return converter.BannerToResponse(banner), nil
}

// Activate makes id the only active banner.
func (u *bannerUsecase) Activate(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error) {
	var activated *dto.BannerResponse

	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		banner, err := u.bannerRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if banner == nil {
			return ErrBannerNotFound
		}

		if _, err := u.bannerRepo.Activate(ctx, id); err != nil {
			return err
		}

		banner.IsActive = true
		activated = converter.BannerToResponse(banner)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBannerNotFound) {
			return nil, err
		}
		u.log.Warnf("Failed to activate banner %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Banner activated: id=%s", id)
	return activated, nil
}

func (u *bannerUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteResult, error) {
	deleted, err := u.bannerRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete banner %s: %+v", id, err)
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrBannerNotFound
	}

	u.log.Infof("Banner deleted: id=%s", id)
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
