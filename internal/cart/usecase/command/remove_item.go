package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to remove a cart item
type RemoveItemCommand struct {
	UserID uint
	ItemID uint
}

// RemoveItemHandler handles the remove cart item command
type RemoveItemHandler struct {
	repo domain.CartRepository
}

func NewRemoveItemHandler(repo domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove cart item command. Scoping the delete to
// the user makes other users' items indistinguishable from absent ones.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := h.repo.Remove(ctx, cmd.UserID, cmd.ItemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
