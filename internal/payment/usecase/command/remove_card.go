package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// RemoveCardCommand represents the command to delete a stored card
type RemoveCardCommand struct {
	UserID uint
	CardID uint
}

// RemoveCardHandler deletes a stored card. The gateway detach is
// best-effort: the local record is removed even if the provider call
// fails, so a card never lingers because of a provider hiccup.
type RemoveCardHandler struct {
	methods domain.PaymentMethodRepository
	gateway gateway.Gateway
}

func NewRemoveCardHandler(methods domain.PaymentMethodRepository, gw gateway.Gateway) *RemoveCardHandler {
	return &RemoveCardHandler{methods: methods, gateway: gw}
}

// Handle executes the remove card command
func (h *RemoveCardHandler) Handle(ctx context.Context, cmd RemoveCardCommand) error {
	method, err := h.methods.FindByID(ctx, cmd.CardID)
	if err != nil {
		return err
	}
	if method.UserID != cmd.UserID {
		return fmt.Errorf("payment method %d: %w", cmd.CardID, apperror.ErrNotFound)
	}

	if err := h.gateway.DetachPaymentMethod(ctx, method.StripePaymentMethodID); err != nil {
		logger.Warn(ctx).Err(err).
			Str("stripe_method_id", method.StripePaymentMethodID).
			Msg("failed to detach payment method, removing local record anyway")
	}

	return h.methods.Delete(ctx, cmd.CardID)
}
