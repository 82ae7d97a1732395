package domain

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"
)

// Promotion is a time-windowed percentage discount bound to one product code.
// "Active" is derived from the window, never stored.
type Promotion struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	ProductID   string         `json:"product_id" gorm:"not null;index"`
	Description string         `json:"description"`
	Discount    float64        `json:"discount" gorm:"not null"` // percent, 0-100
	StartDate   time.Time      `json:"start_date" gorm:"not null"`
	EndDate     time.Time      `json:"end_date" gorm:"not null"`
	BannerImage string         `json:"banner_image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Promotion) TableName() string {
	return "promotions"
}

// ActiveAt reports whether the promotion window contains now, inclusive
// on both ends.
func (p *Promotion) ActiveAt(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// Quote is the result of pricing a product against the promotion catalog.
type Quote struct {
	Active          bool    `json:"active"`
	PromotionID     uint    `json:"promotion_id,omitempty"`
	Title           string  `json:"title,omitempty"`
	DiscountPercent float64 `json:"discount_percent"`
	Discount        float64 `json:"discount"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// PriceFor prices a product against the promotion catalog at a given
// instant. Pure function of its inputs. When several promotions cover the
// same product, the one created last wins; ties break on the higher ID.
func PriceFor(basePrice float64, productID string, promotions []Promotion, now time.Time) Quote {
	var pick *Promotion
	for i := range promotions {
		p := &promotions[i]
		if p.ProductID != productID || !p.ActiveAt(now) {
			continue
		}
		if pick == nil ||
			p.CreatedAt.After(pick.CreatedAt) ||
			(p.CreatedAt.Equal(pick.CreatedAt) && p.ID > pick.ID) {
			pick = p
		}
	}

	if pick == nil {
		return Quote{Active: false, DiscountedPrice: Round2(basePrice)}
	}

	discount := Round2(basePrice * pick.Discount / 100)
	return Quote{
		Active:          true,
		PromotionID:     pick.ID,
		Title:           pick.Title,
		DiscountPercent: pick.Discount,
		Discount:        discount,
		DiscountedPrice: Round2(basePrice - discount),
	}
}

// Round2 rounds to two-decimal currency precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PromotionRepository defines the contract for promotion data access
type PromotionRepository interface {
	Create(ctx context.Context, promotion *Promotion) error
	FindByID(ctx context.Context, id uint) (*Promotion, error)
	FindAll(ctx context.Context) ([]Promotion, error)
	FindByProductID(ctx context.Context, productID string) ([]Promotion, error)
	Update(ctx context.Context, promotion *Promotion) error
	Delete(ctx context.Context, id uint) error
}
