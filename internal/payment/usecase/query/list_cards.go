package query

import (
	"context"

	"github.com/snazzy/storefront/internal/payment/domain"
)

// ListCardsQuery lists the caller's stored cards
type ListCardsQuery struct {
	UserID uint
}

type ListCardsHandler struct {
	methods domain.PaymentMethodRepository
}

func NewListCardsHandler(methods domain.PaymentMethodRepository) *ListCardsHandler {
	return &ListCardsHandler{methods: methods}
}

func (h *ListCardsHandler) Handle(ctx context.Context, q ListCardsQuery) ([]domain.PaymentMethod, error) {
	return h.methods.FindByUserID(ctx, q.UserID)
}
