package query

import (
	"context"

	"github.com/snazzy/storefront/internal/order/domain"
)

// ListOrdersQuery lists all orders (admin)
type ListOrdersQuery struct{}

type ListOrdersHandler struct {
	orders domain.OrderRepository
}

func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

func (h *ListOrdersHandler) Handle(ctx context.Context, _ ListOrdersQuery) ([]domain.Order, error) {
	return h.orders.FindAll(ctx)
}

// MyOrdersQuery lists the caller's orders, newest first
type MyOrdersQuery struct {
	UserID uint
}

type MyOrdersHandler struct {
	orders domain.OrderRepository
}

func NewMyOrdersHandler(orders domain.OrderRepository) *MyOrdersHandler {
	return &MyOrdersHandler{orders: orders}
}

func (h *MyOrdersHandler) Handle(ctx context.Context, q MyOrdersQuery) ([]domain.Order, error) {
	return h.orders.FindByUserID(ctx, q.UserID)
}
