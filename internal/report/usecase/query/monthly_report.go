package query

import (
	"context"
	"fmt"
	"time"

	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	"github.com/snazzy/storefront/internal/report/domain"
	refunddomain "github.com/snazzy/storefront/internal/refund/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// MonthlyReportQuery selects a UTC calendar month. Zero values mean the
// current month.
type MonthlyReportQuery struct {
	Year  int
	Month int
	Now   time.Time
}

// MonthlyReportHandler assembles the monthly financial summary: payment
// volume, refund counts, net income and the delta against the prior month.
type MonthlyReportHandler struct {
	repo domain.ReportRepository
}

func NewMonthlyReportHandler(repo domain.ReportRepository) *MonthlyReportHandler {
	return &MonthlyReportHandler{repo: repo}
}

// Handle executes the monthly report query
func (h *MonthlyReportHandler) Handle(ctx context.Context, q MonthlyReportQuery) (*domain.MonthlyReport, error) {
	now := q.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	year, month := q.Year, q.Month
	if year == 0 && month == 0 {
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("invalid report month %d-%d: %w", year, month, apperror.ErrValidation)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	prevFrom := from.AddDate(0, -1, 0)

	paymentTotal, paymentCount, err := h.repo.SumPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	refundCounts, err := h.repo.CountRefundsByStatusBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count refunds: %w", err)
	}

	refundedAmount, err := h.repo.SumApprovedRefundAmountBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum refunds: %w", err)
	}

	prevNet, err := h.netIncome(ctx, prevFrom, from)
	if err != nil {
		return nil, err
	}

	net := promodomain.Round2(paymentTotal - refundedAmount)
	return &domain.MonthlyReport{
		Year:              year,
		Month:             month,
		PaymentCount:      paymentCount,
		PaymentTotal:      promodomain.Round2(paymentTotal),
		RefundsPending:    refundCounts[string(refunddomain.StatusPending)],
		RefundsApproved:   refundCounts[string(refunddomain.StatusApproved)],
		RefundsRejected:   refundCounts[string(refunddomain.StatusRejected)],
		RefundedAmount:    promodomain.Round2(refundedAmount),
		NetIncome:         net,
		PreviousNetIncome: prevNet,
		NetIncomeDelta:    promodomain.Round2(net - prevNet),
	}, nil
}

func (h *MonthlyReportHandler) netIncome(ctx context.Context, from, to time.Time) (float64, error) {
	total, _, err := h.repo.SumPaymentsBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to sum prior month payments: %w", err)
	}
	refunded, err := h.repo.SumApprovedRefundAmountBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to sum prior month refunds: %w", err)
	}
	return promodomain.Round2(total - refunded), nil
}
