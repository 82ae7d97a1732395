package query

import (
	"context"

	"github.com/snazzy/storefront/internal/refund/domain"
)

// ListRefundsQuery lists all refund requests (admin)
type ListRefundsQuery struct{}

type ListRefundsHandler struct {
	refunds domain.RefundRepository
}

func NewListRefundsHandler(refunds domain.RefundRepository) *ListRefundsHandler {
	return &ListRefundsHandler{refunds: refunds}
}

func (h *ListRefundsHandler) Handle(ctx context.Context, _ ListRefundsQuery) ([]domain.RefundRequest, error) {
	return h.refunds.FindAll(ctx)
}

// MyRefundsQuery lists the caller's refund requests
type MyRefundsQuery struct {
	UserID uint
}

type MyRefundsHandler struct {
	refunds domain.RefundRepository
}

func NewMyRefundsHandler(refunds domain.RefundRepository) *MyRefundsHandler {
	return &MyRefundsHandler{refunds: refunds}
}

func (h *MyRefundsHandler) Handle(ctx context.Context, q MyRefundsQuery) ([]domain.RefundRequest, error) {
	return h.refunds.FindByUserID(ctx, q.UserID)
}
