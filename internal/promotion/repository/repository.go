package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

type GormPromotionRepository struct {
	db *gorm.DB
}

func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

func (r *GormPromotionRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Promotion{})
}

func (r *GormPromotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *GormPromotionRepository) FindByID(ctx context.Context, id uint) (*domain.Promotion, error) {
	var promotion domain.Promotion
	err := r.db.WithContext(ctx).First(&promotion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("promotion %d: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *GormPromotionRepository) FindAll(ctx context.Context) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

func (r *GormPromotionRepository) FindByProductID(ctx context.Context, productID string) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&promotions).Error
	return promotions, err
}

func (r *GormPromotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *GormPromotionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Promotion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("promotion %d: %w", id, apperror.ErrNotFound)
	}
	return nil
}
