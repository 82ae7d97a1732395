package command

import (
	"context"
	"errors"
	"fmt"

	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/refund/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// RequestRefundCommand represents the command to open a refund request
type RequestRefundCommand struct {
	UserID    uint
	PaymentID uint
	Reason    string
}

// RequestRefundHandler opens a refund request against one of the caller's
// payments. One open-or-decided request per (user, payment).
type RequestRefundHandler struct {
	refunds  domain.RefundRepository
	payments paymentdomain.PaymentRepository
}

func NewRequestRefundHandler(refunds domain.RefundRepository, payments paymentdomain.PaymentRepository) *RequestRefundHandler {
	return &RequestRefundHandler{refunds: refunds, payments: payments}
}

// Handle executes the request refund command
func (h *RequestRefundHandler) Handle(ctx context.Context, cmd RequestRefundCommand) (*domain.RefundRequest, error) {
	if cmd.Reason == "" {
		return nil, fmt.Errorf("refund reason is required: %w", apperror.ErrValidation)
	}

	payment, err := h.payments.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != cmd.UserID {
		return nil, fmt.Errorf("payment %d: %w", cmd.PaymentID, apperror.ErrNotFound)
	}

	if _, err := h.refunds.FindByUserAndPayment(ctx, cmd.UserID, cmd.PaymentID); err == nil {
		return nil, fmt.Errorf("refund already requested for payment %d: %w", cmd.PaymentID, apperror.ErrConflict)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	request := &domain.RefundRequest{
		UserID:         cmd.UserID,
		PaymentID:      cmd.PaymentID,
		Reason:         cmd.Reason,
		Status:         domain.StatusPending,
		OriginalAmount: payment.Amount,
	}
	if err := h.refunds.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to store refund request: %w", err)
	}
	return request, nil
}
