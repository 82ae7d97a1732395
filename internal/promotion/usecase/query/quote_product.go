package query

import (
	"context"
	"fmt"
	"time"

	"github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// QuoteProductQuery asks for the authoritative discounted price of a
// product at a given instant.
type QuoteProductQuery struct {
	ProductID string
	BasePrice float64
	Now       time.Time
}

// QuoteProductHandler prices a product against the live promotion catalog.
// This is the server-side recomputation consulted at checkout; client
// supplied discounts are never trusted.
type QuoteProductHandler struct {
	repo domain.PromotionRepository
}

func NewQuoteProductHandler(repo domain.PromotionRepository) *QuoteProductHandler {
	return &QuoteProductHandler{repo: repo}
}

// Handle executes the quote query
func (h *QuoteProductHandler) Handle(ctx context.Context, q QuoteProductQuery) (domain.Quote, error) {
	if q.ProductID == "" {
		return domain.Quote{}, fmt.Errorf("product_id is required: %w", apperror.ErrValidation)
	}
	if q.BasePrice < 0 {
		return domain.Quote{}, fmt.Errorf("base price must not be negative: %w", apperror.ErrValidation)
	}

	now := q.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	promotions, err := h.repo.FindByProductID(ctx, q.ProductID)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to load promotions: %w", err)
	}

	return domain.PriceFor(q.BasePrice, q.ProductID, promotions, now), nil
}
