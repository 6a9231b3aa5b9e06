package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiagnosticTest is a bookable test in the catalog. Slots is the full list of
// slot labels offered on any date.
type DiagnosticTest struct {
	Slug            string          `gorm:"type:varchar(150);primaryKey" json:"slug"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Image           string          `gorm:"type:text" json:"image"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	DiscountPercent int             `gorm:"not null;default:0" json:"discount_percent"`
	PromoCode       string          `gorm:"type:varchar(50)" json:"promo_code"`
	Slots           SlotList        `gorm:"type:jsonb;not null;default:'[]'" json:"slots"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DiagnosticTest) TableName() string {
	return "tests"
}

// OffersSlot reports whether label is part of the catalog.
func (t *DiagnosticTest) OffersSlot(label string) bool {
	for _, s := range t.Slots {
		if s == label {
			return true
		}
	}
	return false
}

// TestAvailability is a catalog row with the slots still free on one date.
type TestAvailability struct {
	Test           DiagnosticTest
	RemainingSlots []string
}
