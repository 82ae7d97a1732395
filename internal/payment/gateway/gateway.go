// Package gateway defines the payment-provider port consumed by the
// payment and refund flows, plus its Stripe implementation.
package gateway

import "context"

// Card is the masked card metadata returned by the provider.
type Card struct {
	Brand    string
	Last4    string
	ExpMonth int64
	ExpYear  int64
}

// Charge is the outcome of a confirmed charge attempt. Status is the
// provider's status string, stored verbatim.
type Charge struct {
	ID           string
	Status       string
	ClientSecret string
}

// Refund is the outcome of a refund for a prior charge.
type Refund struct {
	ID     string
	Amount float64
	Status string
}

// Gateway is the payment-provider contract. Implementations must apply a
// bounded timeout to every call and map an ambiguous timeout to
// apperror.ErrIndeterminate rather than retrying.
type Gateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	AttachPaymentMethod(ctx context.Context, customerID, methodID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error
	GetPaymentMethod(ctx context.Context, methodID string) (*Card, error)
	DetachPaymentMethod(ctx context.Context, methodID string) error
	CreateCharge(ctx context.Context, amount float64, currency, customerID, methodID string) (*Charge, error)
	CreateRefund(ctx context.Context, chargeID string) (*Refund, error)
}
