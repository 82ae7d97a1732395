package query

import (
	"context"

	"github.com/snazzy/storefront/internal/payment/domain"
)

// MyPaymentsQuery lists the caller's payments, newest first
type MyPaymentsQuery struct {
	UserID uint
}

type MyPaymentsHandler struct {
	payments domain.PaymentRepository
}

func NewMyPaymentsHandler(payments domain.PaymentRepository) *MyPaymentsHandler {
	return &MyPaymentsHandler{payments: payments}
}

func (h *MyPaymentsHandler) Handle(ctx context.Context, q MyPaymentsQuery) ([]domain.Payment, error) {
	return h.payments.FindByUserID(ctx, q.UserID)
}
