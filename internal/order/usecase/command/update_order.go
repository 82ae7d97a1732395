package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/order/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// UpdateOrderCommand carries the admin-editable order fields. Zero values
// mean "leave unchanged"; pricing and loyalty fields are immutable.
type UpdateOrderCommand struct {
	OrderID         uint
	CustomerName    string
	CustomerAddress string
	Size            string
	Quantity        int
	Status          string
}

// UpdateOrderHandler handles admin order edits
type UpdateOrderHandler struct {
	orders domain.OrderRepository
}

func NewUpdateOrderHandler(orders domain.OrderRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{orders: orders}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	order, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if cmd.CustomerName != "" {
		order.CustomerName = cmd.CustomerName
	}
	if cmd.CustomerAddress != "" {
		order.CustomerAddress = cmd.CustomerAddress
	}
	if cmd.Size != "" {
		order.Size = cmd.Size
	}
	if cmd.Quantity != 0 {
		order.Quantity = cmd.Quantity
	}
	if cmd.Status != "" {
		if !domain.ValidStatus(cmd.Status) {
			return nil, fmt.Errorf("invalid status %q: %w", cmd.Status, apperror.ErrValidation)
		}
		order.Status = cmd.Status
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := h.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}
