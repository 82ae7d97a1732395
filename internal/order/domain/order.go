package domain

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/snazzy/storefront/pkg/apperror"
)

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true,
}

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// Order is the ledger record of one purchase. Customer name and address
// are snapshots taken at creation; later profile edits do not touch them.
// Pricing fields record exactly what was charged and why.
type Order struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	CustomerName    string `json:"customer_name" gorm:"not null"`
	CustomerAddress string `json:"customer_address" gorm:"not null"`

	ProductID   string `json:"product_id" gorm:"not null"`
	ProductName string `json:"product_name" gorm:"not null"`
	Size        string `json:"size" gorm:"not null"`
	Quantity    int    `json:"quantity" gorm:"not null"`

	BasePrice         float64 `json:"base_price" gorm:"not null"`
	PromotionID       uint    `json:"promotion_id,omitempty"`
	PromotionTitle    string  `json:"promotion_title,omitempty"`
	PromotionDiscount float64 `json:"promotion_discount"`
	PointsRedeemed    bool    `json:"points_redeemed"`
	LoyaltyDiscount   float64 `json:"loyalty_discount"`
	TotalPrice        float64 `json:"total_price" gorm:"not null"`

	PaymentID uint   `json:"payment_id,omitempty" gorm:"index"`
	Status    string `json:"status" gorm:"not null;default:'pending'"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Validate checks the field constraints that hold for every order row.
func (o *Order) Validate() error {
	if o.CustomerName == "" {
		return fmt.Errorf("customer name is required: %w", apperror.ErrValidation)
	}
	if o.CustomerAddress == "" {
		return fmt.Errorf("customer address is required: %w", apperror.ErrValidation)
	}
	if o.ProductID == "" || o.ProductName == "" {
		return fmt.Errorf("product is required: %w", apperror.ErrValidation)
	}
	if !validSizes[o.Size] {
		return fmt.Errorf("invalid size %q: %w", o.Size, apperror.ErrValidation)
	}
	if o.Quantity < 1 || o.Quantity > 100 {
		return fmt.Errorf("quantity %d out of range 1-100: %w", o.Quantity, apperror.ErrValidation)
	}
	if o.BasePrice < 0 || o.TotalPrice < 0 {
		return fmt.Errorf("prices must not be negative: %w", apperror.ErrValidation)
	}
	if !validStatuses[o.Status] {
		return fmt.Errorf("invalid status %q: %w", o.Status, apperror.ErrValidation)
	}
	// total = base - promotion - loyalty, within a cent of drift.
	want := o.BasePrice - o.PromotionDiscount - o.LoyaltyDiscount
	if math.Abs(o.TotalPrice-want) > 0.01 {
		return fmt.Errorf("total %.2f does not match priced %.2f: %w", o.TotalPrice, want, apperror.ErrValidation)
	}
	return nil
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// ValidSize reports whether s is a known garment size.
func ValidSize(s string) bool {
	return validSizes[s]
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]Order, error)
	FindByPaymentID(ctx context.Context, paymentID uint) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
}
