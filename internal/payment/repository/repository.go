package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Payment{}, &domain.PaymentMethod{})
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

func (r *GormPaymentRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *GormPaymentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type GormPaymentMethodRepository struct {
	db *gorm.DB
}

func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{db: db}
}

func (r *GormPaymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *GormPaymentMethodRepository) FindByID(ctx context.Context, id uint) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := r.db.WithContext(ctx).First(&method, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment method %d: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &method, nil
}

func (r *GormPaymentMethodRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&methods).Error
	return methods, err
}

func (r *GormPaymentMethodRepository) FindByStripeID(ctx context.Context, stripeMethodID string) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("stripe_payment_method_id = ?", stripeMethodID).
		First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment method %s: %w", stripeMethodID, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &method, nil
}

func (r *GormPaymentMethodRepository) FindByUserAndStripeID(ctx context.Context, userID uint, stripeMethodID string) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND stripe_payment_method_id = ?", userID, stripeMethodID).
		First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment method %s: %w", stripeMethodID, apperror.ErrNotFound)
		}
		return nil, err
	}
	return &method, nil
}

func (r *GormPaymentMethodRepository) Update(ctx context.Context, method *domain.PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *GormPaymentMethodRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.PaymentMethod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment method %d: %w", id, apperror.ErrNotFound)
	}
	return nil
}
