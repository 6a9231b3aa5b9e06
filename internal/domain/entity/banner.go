package entity

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a promotional banner. At most one banner is active at a time.
type Banner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        string    `gorm:"type:text" json:"image"`
	CouponCode   string    `gorm:"type:varchar(50)" json:"coupon_code"`
	DiscountRate int       `gorm:"not null;default:0" json:"discount_rate"`
	IsActive     bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Banner) TableName() string {
	return "banners"
}
