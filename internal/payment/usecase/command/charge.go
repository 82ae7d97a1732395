package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// ChargeCommand represents the command to capture a payment
type ChargeCommand struct {
	UserID         uint
	Amount         float64
	Currency       string
	StripeMethodID string
}

// ChargeHandler captures an off-session payment against a stored card.
// No Payment row is written unless the gateway reported an outcome: a
// timed-out call surfaces ErrIndeterminate and leaves no record.
type ChargeHandler struct {
	payments domain.PaymentRepository
	methods  domain.PaymentMethodRepository
	users    userdomain.UserRepository
	gateway  gateway.Gateway
}

func NewChargeHandler(payments domain.PaymentRepository, methods domain.PaymentMethodRepository, users userdomain.UserRepository, gw gateway.Gateway) *ChargeHandler {
	return &ChargeHandler{payments: payments, methods: methods, users: users, gateway: gw}
}

// Handle executes the charge command
func (h *ChargeHandler) Handle(ctx context.Context, cmd ChargeCommand) (*domain.Payment, error) {
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperror.ErrValidation)
	}
	if cmd.StripeMethodID == "" {
		return nil, fmt.Errorf("payment method id is required: %w", apperror.ErrValidation)
	}
	currency := cmd.Currency
	if currency == "" {
		currency = "usd"
	}

	// The method must be a card the caller stored, never someone else's.
	method, err := h.methods.FindByUserAndStripeID(ctx, cmd.UserID, cmd.StripeMethodID)
	if err != nil {
		return nil, err
	}

	charge, err := h.gateway.CreateCharge(ctx, cmd.Amount, currency, method.StripeCustomerID, method.StripePaymentMethodID)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		UserID:          cmd.UserID,
		Amount:          cmd.Amount,
		Currency:        currency,
		StripePaymentID: charge.ID,
		Status:          charge.Status,
	}
	if err := h.payments.Create(ctx, payment); err != nil {
		// The charge succeeded on the provider side; losing the row is an
		// operational problem, not a payment failure.
		logger.Error(ctx).Err(err).
			Str("stripe_payment_id", charge.ID).
			Uint("user_id", cmd.UserID).
			Msg("charge captured but payment record could not be stored")
		return nil, fmt.Errorf("failed to record payment %s: %w", charge.ID, err)
	}

	return payment, nil
}
