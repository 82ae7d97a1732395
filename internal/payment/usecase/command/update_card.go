package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// UpdateCardCommand re-points a stored card at a new gateway method
type UpdateCardCommand struct {
	UserID         uint
	CardID         uint
	StripeMethodID string
}

// UpdateCardHandler swaps the gateway method behind a stored card and
// refreshes the masked metadata. The old method is detached best-effort.
type UpdateCardHandler struct {
	methods domain.PaymentMethodRepository
	gateway gateway.Gateway
}

func NewUpdateCardHandler(methods domain.PaymentMethodRepository, gw gateway.Gateway) *UpdateCardHandler {
	return &UpdateCardHandler{methods: methods, gateway: gw}
}

// Handle executes the update card command
func (h *UpdateCardHandler) Handle(ctx context.Context, cmd UpdateCardCommand) (*domain.PaymentMethod, error) {
	if cmd.StripeMethodID == "" {
		return nil, fmt.Errorf("payment method id is required: %w", apperror.ErrValidation)
	}

	method, err := h.methods.FindByID(ctx, cmd.CardID)
	if err != nil {
		return nil, err
	}
	if method.UserID != cmd.UserID {
		return nil, fmt.Errorf("payment method %d: %w", cmd.CardID, apperror.ErrNotFound)
	}
	if method.StripePaymentMethodID == cmd.StripeMethodID {
		return method, nil
	}

	if _, err := h.methods.FindByStripeID(ctx, cmd.StripeMethodID); err == nil {
		return nil, fmt.Errorf("card already added: %w", apperror.ErrConflict)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	if err := h.gateway.AttachPaymentMethod(ctx, method.StripeCustomerID, cmd.StripeMethodID); err != nil {
		return nil, err
	}
	if err := h.gateway.SetDefaultPaymentMethod(ctx, method.StripeCustomerID, cmd.StripeMethodID); err != nil {
		return nil, err
	}

	card, err := h.gateway.GetPaymentMethod(ctx, cmd.StripeMethodID)
	if err != nil {
		return nil, err
	}

	oldMethodID := method.StripePaymentMethodID
	method.StripePaymentMethodID = cmd.StripeMethodID
	method.CardBrand = card.Brand
	method.Last4 = card.Last4
	method.ExpMonth = card.ExpMonth
	method.ExpYear = card.ExpYear

	if err := h.methods.Update(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	if err := h.gateway.DetachPaymentMethod(ctx, oldMethodID); err != nil {
		logger.Warn(ctx).Err(err).
			Str("stripe_method_id", oldMethodID).
			Msg("failed to detach replaced payment method")
	}

	return method, nil
}
