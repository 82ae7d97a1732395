package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// UpdatePaymentStatusCommand echoes a gateway status change onto a payment
type UpdatePaymentStatusCommand struct {
	PaymentID uint
	Status    string
}

// UpdatePaymentStatusHandler handles admin status updates. The status is
// the provider's string, stored verbatim; no other payment field is mutable.
type UpdatePaymentStatusHandler struct {
	payments domain.PaymentRepository
}

func NewUpdatePaymentStatusHandler(payments domain.PaymentRepository) *UpdatePaymentStatusHandler {
	return &UpdatePaymentStatusHandler{payments: payments}
}

// Handle executes the update payment status command
func (h *UpdatePaymentStatusHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*domain.Payment, error) {
	if cmd.Status == "" {
		return nil, fmt.Errorf("status is required: %w", apperror.ErrValidation)
	}

	payment, err := h.payments.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if err := h.payments.UpdateStatus(ctx, payment.ID, cmd.Status); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	payment.Status = cmd.Status
	return payment, nil
}
