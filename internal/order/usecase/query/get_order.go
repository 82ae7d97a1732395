package query

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/order/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// GetOrderQuery fetches one order. Non-admin callers only see their own.
type GetOrderQuery struct {
	OrderID uint
	UserID  uint
	IsAdmin bool
}

type GetOrderHandler struct {
	orders domain.OrderRepository
}

func NewGetOrderHandler(orders domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*domain.Order, error) {
	order, err := h.orders.FindByID(ctx, q.OrderID)
	if err != nil {
		return nil, err
	}
	if !q.IsAdmin && order.UserID != q.UserID {
		return nil, fmt.Errorf("order %d: %w", q.OrderID, apperror.ErrNotFound)
	}
	return order, nil
}
