package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/snazzy/storefront/internal/refund/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

type GormRefundRepository struct {
	db *gorm.DB
}

func NewGormRefundRepository(db *gorm.DB) *GormRefundRepository {
	return &GormRefundRepository{db: db}
}

func (r *GormRefundRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.RefundRequest{})
}

func (r *GormRefundRepository) Create(ctx context.Context, request *domain.RefundRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *GormRefundRepository) FindByID(ctx context.Context, id uint) (*domain.RefundRequest, error) {
	var request domain.RefundRequest
	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("refund request %d: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormRefundRepository) FindAll(ctx context.Context) ([]domain.RefundRequest, error) {
	var requests []domain.RefundRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *GormRefundRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.RefundRequest, error) {
	var requests []domain.RefundRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *GormRefundRepository) FindByUserAndPayment(ctx context.Context, userID, paymentID uint) (*domain.RefundRequest, error) {
	var request domain.RefundRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND payment_id = ?", userID, paymentID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("refund request for payment %d: %w", paymentID, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormRefundRepository) Update(ctx context.Context, request *domain.RefundRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
