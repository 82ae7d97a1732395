package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/snazzy/storefront/pkg/apperror"
)

const defaultCallTimeout = 15 * time.Second

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	api     *client.API
	timeout time.Duration
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, timeout: defaultCallTimeout}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	customer, err := g.api.Customers.New(&stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
		Name:   stripe.String(name),
	})
	if err != nil {
		return "", g.wrap(ctx, "create customer", err)
	}
	return customer.ID, nil
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID, methodID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.api.PaymentMethods.Attach(methodID, &stripe.PaymentMethodAttachParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	})
	if err != nil {
		return g.wrap(ctx, "attach payment method", err)
	}
	return nil
}

func (g *StripeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.api.Customers.Update(customerID, &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(methodID),
		},
	})
	if err != nil {
		return g.wrap(ctx, "set default payment method", err)
	}
	return nil
}

func (g *StripeGateway) GetPaymentMethod(ctx context.Context, methodID string) (*Card, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	pm, err := g.api.PaymentMethods.Get(methodID, &stripe.PaymentMethodParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, g.wrap(ctx, "get payment method", err)
	}
	if pm.Card == nil {
		return nil, fmt.Errorf("payment method %s has no card: %w", methodID, apperror.ErrValidation)
	}
	return &Card{
		Brand:    string(pm.Card.Brand),
		Last4:    pm.Card.Last4,
		ExpMonth: pm.Card.ExpMonth,
		ExpYear:  pm.Card.ExpYear,
	}, nil
}

func (g *StripeGateway) DetachPaymentMethod(ctx context.Context, methodID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.api.PaymentMethods.Detach(methodID, &stripe.PaymentMethodDetachParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return g.wrap(ctx, "detach payment method", err)
	}
	return nil
}

func (g *StripeGateway) CreateCharge(ctx context.Context, amount float64, currency, customerID, methodID string) (*Charge, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	intent, err := g.api.PaymentIntents.New(&stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(toCents(amount)),
		Currency:      stripe.String(currency),
		Customer:      stripe.String(customerID),
		PaymentMethod: stripe.String(methodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	})
	if err != nil {
		return nil, g.wrap(ctx, "create charge", err)
	}
	return &Charge{
		ID:           intent.ID,
		Status:       string(intent.Status),
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (g *StripeGateway) CreateRefund(ctx context.Context, chargeID string) (*Refund, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	refund, err := g.api.Refunds.New(&stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(chargeID),
	})
	if err != nil {
		return nil, g.wrap(ctx, "create refund", err)
	}
	return &Refund{
		ID:     refund.ID,
		Amount: fromCents(refund.Amount),
		Status: string(refund.Status),
	}, nil
}

// wrap maps provider failures into the error taxonomy. A deadline that
// expired mid-call means the outcome is unknown on the provider side.
func (g *StripeGateway) wrap(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("stripe %s timed out: %w", op, apperror.ErrIndeterminate)
	}
	return fmt.Errorf("stripe %s: %v: %w", op, err, apperror.ErrGateway)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
