package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// CartItem is a line a customer staged before checkout. The order flow
// clears the cart after a successful create; stale items are harmless.
type CartItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	ProductID   string         `json:"product_id" gorm:"not null"`
	ProductName string         `json:"product_name"`
	Size        string         `json:"size"`
	Quantity    int            `json:"quantity" gorm:"not null;default:1"`
	UnitPrice   float64        `json:"unit_price"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// CartRepository defines the contract for cart data access
type CartRepository interface {
	Add(ctx context.Context, item *CartItem) error
	FindByUser(ctx context.Context, userID uint) ([]CartItem, error)
	Remove(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
}
