package query

import (
	"context"

	"github.com/snazzy/storefront/internal/promotion/domain"
)

// GetPromotionQuery represents the query to get one promotion
type GetPromotionQuery struct {
	ID uint
}

// GetPromotionHandler handles the get promotion query
type GetPromotionHandler struct {
	repo domain.PromotionRepository
}

func NewGetPromotionHandler(repo domain.PromotionRepository) *GetPromotionHandler {
	return &GetPromotionHandler{repo: repo}
}

// Handle executes the get promotion query
func (h *GetPromotionHandler) Handle(ctx context.Context, q GetPromotionQuery) (*domain.Promotion, error) {
	return h.repo.FindByID(ctx, q.ID)
}
