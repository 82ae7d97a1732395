package domain

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/snazzy/storefront/pkg/apperror"
)

// Status is the refund request state. The machine is closed: a request
// starts Pending and moves exactly once to Approved or Rejected.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Transition checks that moving to next is legal from the current state.
func (s Status) Transition(next Status) error {
	if s != StatusPending {
		return fmt.Errorf("refund already %s: %w", s, apperror.ErrInvalidState)
	}
	if next != StatusApproved && next != StatusRejected {
		return fmt.Errorf("cannot move refund to %q: %w", next, apperror.ErrInvalidState)
	}
	return nil
}

// RefundRequest is a customer's ask to unwind a payment. OriginalAmount
// snapshots the payment amount at request time.
type RefundRequest struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	PaymentID      uint           `json:"payment_id" gorm:"not null;index"`
	Reason         string         `json:"reason"`
	Status         Status         `json:"status" gorm:"not null;default:'pending'"`
	AdminResponse  string         `json:"admin_response,omitempty"`
	OriginalAmount float64        `json:"original_amount"`
	RefundAmount   float64        `json:"refund_amount"`
	StripeRefundID string         `json:"stripe_refund_id,omitempty"`
	DecidedAt      *time.Time     `json:"decided_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (RefundRequest) TableName() string {
	return "refund_requests"
}

// RefundRepository defines the contract for refund request data access
type RefundRepository interface {
	Create(ctx context.Context, request *RefundRequest) error
	FindByID(ctx context.Context, id uint) (*RefundRequest, error)
	FindAll(ctx context.Context) ([]RefundRequest, error)
	FindByUserID(ctx context.Context, userID uint) ([]RefundRequest, error)
	FindByUserAndPayment(ctx context.Context, userID, paymentID uint) (*RefundRequest, error)
	Update(ctx context.Context, request *RefundRequest) error
}
