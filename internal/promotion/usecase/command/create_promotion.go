package command

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// CreatePromotionCommand represents the command to create a promotion
type CreatePromotionCommand struct {
	Title       string
	ProductID   string
	Description string
	Discount    float64
	StartDate   string
	EndDate     string
	BannerImage string
}

// CreatePromotionHandler handles the create promotion command
type CreatePromotionHandler struct {
	repo domain.PromotionRepository
}

func NewCreatePromotionHandler(repo domain.PromotionRepository) *CreatePromotionHandler {
	return &CreatePromotionHandler{repo: repo}
}

// Handle executes the create promotion command
func (h *CreatePromotionHandler) Handle(ctx context.Context, cmd CreatePromotionCommand) (*domain.Promotion, error) {
	if cmd.Title == "" || cmd.ProductID == "" {
		return nil, fmt.Errorf("title and product_id are required: %w", apperror.ErrValidation)
	}
	if cmd.Discount <= 0 || cmd.Discount > 100 {
		return nil, fmt.Errorf("discount must be within (0, 100]: %w", apperror.ErrValidation)
	}

	start, end, err := parseWindow(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	promotion := &domain.Promotion{
		Title:       cmd.Title,
		ProductID:   cmd.ProductID,
		Description: cmd.Description,
		Discount:    cmd.Discount,
		StartDate:   start,
		EndDate:     end,
		BannerImage: cmd.BannerImage,
	}

	if err := h.repo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	return promotion, nil
}
