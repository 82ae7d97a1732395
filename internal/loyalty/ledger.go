// Package loyalty owns the per-user loyalty point balance. Every mutation
// goes through the ledger as one atomic read-modify-write; no other
// component writes the balance field.
package loyalty

import (
	"context"
	"fmt"

	"github.com/snazzy/storefront/pkg/apperror"
)

const (
	// PointsPerOrder is earned on a non-redeeming order and redeemed
	// on a redeeming one. Exactly one of the two happens per order.
	PointsPerOrder = 5

	// RedemptionDiscount is the dollar discount granted for redeeming
	// PointsPerOrder points.
	RedemptionDiscount = 5.00
)

// PointLedger is the contract consumed by the order and refund flows.
type PointLedger interface {
	Earn(ctx context.Context, userID uint, n int) (int, error)
	Redeem(ctx context.Context, userID uint, n int) (int, error)
	Reverse(ctx context.Context, userID uint, n int) (int, error)
	Restore(ctx context.Context, userID uint, n int) (int, error)
}

// BalanceStore applies an atomic read-modify-write to one user's balance.
// The closure runs inside a transaction holding a row lock on the user.
type BalanceStore interface {
	AdjustBalance(ctx context.Context, userID uint, apply func(current int) (int, error)) (int, error)
}

// Ledger implements PointLedger over a BalanceStore.
type Ledger struct {
	store BalanceStore
}

func NewLedger(store BalanceStore) *Ledger {
	return &Ledger{store: store}
}

// Earn credits n points and returns the new balance.
func (l *Ledger) Earn(ctx context.Context, userID uint, n int) (int, error) {
	return l.store.AdjustBalance(ctx, userID, func(current int) (int, error) {
		return current + n, nil
	})
}

// Redeem debits n points, failing if the balance does not cover them.
func (l *Ledger) Redeem(ctx context.Context, userID uint, n int) (int, error) {
	return l.store.AdjustBalance(ctx, userID, func(current int) (int, error) {
		if current < n {
			return 0, fmt.Errorf("balance %d below %d: %w", current, n, apperror.ErrInsufficientPoints)
		}
		return max(current-n, 0), nil
	})
}

// Reverse undoes an earlier Earn. It saturates at zero and never fails:
// automated reversals must not surface underflow to the caller.
func (l *Ledger) Reverse(ctx context.Context, userID uint, n int) (int, error) {
	return l.store.AdjustBalance(ctx, userID, func(current int) (int, error) {
		return max(current-n, 0), nil
	})
}

// Restore credits back points that were redeemed by an order which has
// since been deleted.
func (l *Ledger) Restore(ctx context.Context, userID uint, n int) (int, error) {
	return l.store.AdjustBalance(ctx, userID, func(current int) (int, error) {
		return current + n, nil
	})
}
