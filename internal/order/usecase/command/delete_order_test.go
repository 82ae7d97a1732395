package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/order/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

func TestDeleteOrder_EarningOrderReversesPoints(t *testing.T) {
	orders := new(mockOrderRepo)
	ledger := new(mockLedger)

	orders.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.Order{ID: 1, UserID: 7, PointsRedeemed: false}, nil)
	orders.On("Delete", mock.Anything, uint(1)).Return(nil)
	ledger.On("Reverse", mock.Anything, uint(7), 5).Return(0, nil)

	h := NewDeleteOrderHandler(orders, ledger)
	err := h.Handle(context.Background(), DeleteOrderCommand{OrderID: 1})

	assert.NoError(t, err)
	ledger.AssertCalled(t, "Reverse", mock.Anything, uint(7), 5)
	ledger.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteOrder_RedeemingOrderRestoresPoints(t *testing.T) {
	orders := new(mockOrderRepo)
	ledger := new(mockLedger)

	orders.On("FindByID", mock.Anything, uint(2)).
		Return(&domain.Order{ID: 2, UserID: 7, PointsRedeemed: true}, nil)
	orders.On("Delete", mock.Anything, uint(2)).Return(nil)
	ledger.On("Restore", mock.Anything, uint(7), 5).Return(5, nil)

	h := NewDeleteOrderHandler(orders, ledger)
	err := h.Handle(context.Background(), DeleteOrderCommand{OrderID: 2})

	assert.NoError(t, err)
	ledger.AssertCalled(t, "Restore", mock.Anything, uint(7), 5)
	ledger.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteOrder_MissingUserDoesNotBlockDeletion(t *testing.T) {
	orders := new(mockOrderRepo)
	ledger := new(mockLedger)

	orders.On("FindByID", mock.Anything, uint(3)).
		Return(&domain.Order{ID: 3, UserID: 9, PointsRedeemed: false}, nil)
	orders.On("Delete", mock.Anything, uint(3)).Return(nil)
	ledger.On("Reverse", mock.Anything, uint(9), 5).
		Return(0, fmt.Errorf("user 9: %w", apperror.ErrNotFound))

	h := NewDeleteOrderHandler(orders, ledger)
	err := h.Handle(context.Background(), DeleteOrderCommand{OrderID: 3})

	assert.NoError(t, err)
	orders.AssertCalled(t, "Delete", mock.Anything, uint(3))
}

func TestDeleteOrder_MissingOrderFails(t *testing.T) {
	orders := new(mockOrderRepo)
	ledger := new(mockLedger)

	orders.On("FindByID", mock.Anything, uint(99)).
		Return(nil, fmt.Errorf("order 99: %w", apperror.ErrNotFound))

	h := NewDeleteOrderHandler(orders, ledger)
	err := h.Handle(context.Background(), DeleteOrderCommand{OrderID: 99})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
