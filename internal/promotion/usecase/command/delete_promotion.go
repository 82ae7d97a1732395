package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/promotion/domain"
)

// DeletePromotionCommand represents the command to delete a promotion
type DeletePromotionCommand struct {
	ID uint
}

// DeletePromotionHandler handles the delete promotion command
type DeletePromotionHandler struct {
	repo domain.PromotionRepository
}

func NewDeletePromotionHandler(repo domain.PromotionRepository) *DeletePromotionHandler {
	return &DeletePromotionHandler{repo: repo}
}

// Handle executes the delete promotion command
func (h *DeletePromotionHandler) Handle(ctx context.Context, cmd DeletePromotionCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	return nil
}
