package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	refunddomain "github.com/snazzy/storefront/internal/refund/domain"
)

type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) SumPaymentsBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&paymentdomain.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error
	return row.Total, row.Count, err
}

func (r *GormReportRepository) CountRefundsByStatusBetween(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&refunddomain.RefundRequest{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *GormReportRepository) SumApprovedRefundAmountBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&refunddomain.RefundRequest{}).
		Select("COALESCE(SUM(original_amount), 0)").
		Where("status = ? AND created_at >= ? AND created_at < ?", refunddomain.StatusApproved, from, to).
		Scan(&total).Error
	return total, err
}
