package command

import (
	"context"
	"fmt"
	"time"

	"github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// UpdatePromotionCommand represents the command to update a promotion
type UpdatePromotionCommand struct {
	ID          uint
	Title       string
	ProductID   string
	Description string
	Discount    float64
	StartDate   string
	EndDate     string
	BannerImage string
}

// UpdatePromotionHandler handles the update promotion command
type UpdatePromotionHandler struct {
	repo domain.PromotionRepository
}

func NewUpdatePromotionHandler(repo domain.PromotionRepository) *UpdatePromotionHandler {
	return &UpdatePromotionHandler{repo: repo}
}

// Handle executes the update promotion command
func (h *UpdatePromotionHandler) Handle(ctx context.Context, cmd UpdatePromotionCommand) (*domain.Promotion, error) {
	promotion, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Discount <= 0 || cmd.Discount > 100 {
		return nil, fmt.Errorf("discount must be within (0, 100]: %w", apperror.ErrValidation)
	}

	start, end, err := parseWindow(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	promotion.Title = cmd.Title
	promotion.ProductID = cmd.ProductID
	promotion.Description = cmd.Description
	promotion.Discount = cmd.Discount
	promotion.StartDate = start
	promotion.EndDate = end
	if cmd.BannerImage != "" {
		promotion.BannerImage = cmd.BannerImage
	}

	if err := h.repo.Update(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	return promotion, nil
}

// parseWindow validates a [start, end] promotion window.
func parseWindow(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", apperror.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", apperror.ErrValidation)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date before start_date: %w", apperror.ErrValidation)
	}
	return start, end, nil
}
