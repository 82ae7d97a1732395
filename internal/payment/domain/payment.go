package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Payment records one charge attempt against the gateway. It is created
// once per successful capture and never mutated afterwards except for the
// gateway status echo.
type Payment struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	Amount          float64        `json:"amount" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"default:'usd'"`
	StripePaymentID string         `json:"stripe_payment_id" gorm:"uniqueIndex"`
	Status          string         `json:"status"` // gateway status string, stored verbatim
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// PaymentMethod is a stored card: gateway references plus masked metadata.
type PaymentMethod struct {
	ID                    uint           `json:"id" gorm:"primaryKey"`
	UserID                uint           `json:"user_id" gorm:"not null;index"`
	StripeCustomerID      string         `json:"-" gorm:"not null"`
	StripePaymentMethodID string         `json:"stripe_payment_method_id" gorm:"uniqueIndex;not null"`
	CardBrand             string         `json:"card_brand"`
	Last4                 string         `json:"last4"`
	ExpMonth              int64          `json:"exp_month"`
	ExpYear               int64          `json:"exp_year"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
	FindByUserID(ctx context.Context, userID uint) ([]Payment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// PaymentMethodRepository defines the contract for stored card access
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *PaymentMethod) error
	FindByID(ctx context.Context, id uint) (*PaymentMethod, error)
	FindByUserID(ctx context.Context, userID uint) ([]PaymentMethod, error)
	FindByStripeID(ctx context.Context, stripeMethodID string) (*PaymentMethod, error)
	FindByUserAndStripeID(ctx context.Context, userID uint, stripeMethodID string) (*PaymentMethod, error)
	Update(ctx context.Context, method *PaymentMethod) error
	Delete(ctx context.Context, id uint) error
}
