package query

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/cart/domain"
)

// ListCartQuery represents the query for a user's cart
type ListCartQuery struct {
	UserID uint
}

// ListCartHandler handles the list cart query
type ListCartHandler struct {
	repo domain.CartRepository
}

func NewListCartHandler(repo domain.CartRepository) *ListCartHandler {
	return &ListCartHandler{repo: repo}
}

// Handle executes the list cart query
func (h *ListCartHandler) Handle(ctx context.Context, q ListCartQuery) ([]domain.CartItem, error) {
	items, err := h.repo.FindByUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}
