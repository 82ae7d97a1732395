package domain

import (
	"context"
	"time"
)

// MonthlyReport is the read-only financial summary for one UTC calendar
// month. NetIncome = payment total − approved refund total.
type MonthlyReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	PaymentCount int64   `json:"payment_count"`
	PaymentTotal float64 `json:"payment_total"`

	RefundsPending  int64   `json:"refunds_pending"`
	RefundsApproved int64   `json:"refunds_approved"`
	RefundsRejected int64   `json:"refunds_rejected"`
	RefundedAmount  float64 `json:"refunded_amount"`

	NetIncome          float64 `json:"net_income"`
	PreviousNetIncome  float64 `json:"previous_net_income"`
	NetIncomeDelta     float64 `json:"net_income_delta"`
}

// ReportRepository aggregates over the payment and refund tables.
// Windows are half-open: [from, to).
type ReportRepository interface {
	SumPaymentsBetween(ctx context.Context, from, to time.Time) (total float64, count int64, err error)
	CountRefundsByStatusBetween(ctx context.Context, from, to time.Time) (map[string]int64, error)
	SumApprovedRefundAmountBetween(ctx context.Context, from, to time.Time) (float64, error)
}
