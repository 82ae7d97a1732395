package query

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/promotion/domain"
)

// ListPromotionsQuery represents the query to list all promotions
type ListPromotionsQuery struct{}

// ListPromotionsHandler handles the list promotions query
type ListPromotionsHandler struct {
	repo domain.PromotionRepository
}

func NewListPromotionsHandler(repo domain.PromotionRepository) *ListPromotionsHandler {
	return &ListPromotionsHandler{repo: repo}
}

// Handle executes the list promotions query
func (h *ListPromotionsHandler) Handle(ctx context.Context, _ ListPromotionsQuery) ([]domain.Promotion, error) {
	promotions, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}
