package query

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// GetCardQuery fetches one stored card owned by the caller
type GetCardQuery struct {
	UserID uint
	CardID uint
}

type GetCardHandler struct {
	methods domain.PaymentMethodRepository
}

func NewGetCardHandler(methods domain.PaymentMethodRepository) *GetCardHandler {
	return &GetCardHandler{methods: methods}
}

func (h *GetCardHandler) Handle(ctx context.Context, q GetCardQuery) (*domain.PaymentMethod, error) {
	method, err := h.methods.FindByID(ctx, q.CardID)
	if err != nil {
		return nil, err
	}
	// Other users' cards are indistinguishable from absent ones.
	if method.UserID != q.UserID {
		return nil, fmt.Errorf("payment method %d: %w", q.CardID, apperror.ErrNotFound)
	}
	return method, nil
}
