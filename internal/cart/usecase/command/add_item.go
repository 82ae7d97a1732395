package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/cart/domain"
	orderdomain "github.com/snazzy/storefront/internal/order/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// AddItemCommand represents the command to stage a cart item
type AddItemCommand struct {
	UserID      uint
	ProductID   string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   float64
}

// AddItemHandler handles the add cart item command
type AddItemHandler struct {
	repo domain.CartRepository
}

func NewAddItemHandler(repo domain.CartRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle executes the add cart item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.CartItem, error) {
	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product_id is required: %w", apperror.ErrValidation)
	}
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", apperror.ErrValidation)
	}
	if cmd.UnitPrice < 0 {
		return nil, fmt.Errorf("unit_price must not be negative: %w", apperror.ErrValidation)
	}
	if cmd.Size != "" && !orderdomain.ValidSize(cmd.Size) {
		return nil, fmt.Errorf("invalid size %q: %w", cmd.Size, apperror.ErrValidation)
	}

	item := &domain.CartItem{
		UserID:      cmd.UserID,
		ProductID:   cmd.ProductID,
		ProductName: cmd.ProductName,
		Size:        cmd.Size,
		Quantity:    cmd.Quantity,
		UnitPrice:   cmd.UnitPrice,
	}

	if err := h.repo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return item, nil
}
