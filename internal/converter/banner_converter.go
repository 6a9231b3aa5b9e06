package converter

import (
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
)

func BannerToResponse(banner *entity.Banner) *dto.BannerResponse {
	if banner == nil {
		return nil
	}

	return &dto.BannerResponse{
		ID:           banner.ID,
		Title:        banner.Title,
		Description:  banner.Description,
		Image:        banner.Image,
		CouponCode:   banner.CouponCode,
		DiscountRate: banner.DiscountRate,
		IsActive:     banner.IsActive,
		CreatedAt:    banner.CreatedAt,
		UpdatedAt:    banner.UpdatedAt,
	}
}

func BannersToResponses(banners []entity.Banner) []dto.BannerResponse {
	responses := make([]dto.BannerResponse, len(banners))
	for i := range banners {
		responses[i] = *BannerToResponse(&banners[i])
	}
	return responses
}

// CreateBannerRequestToEntity builds a banner that starts inactive.
func CreateBannerRequestToEntity(req *dto.CreateBannerRequest) *entity.Banner {
	return &entity.Banner{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		CouponCode:   req.CouponCode,
		DiscountRate: req.DiscountRate,
		IsActive:     false,
	}
}
