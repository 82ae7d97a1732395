package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/refund/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

func TestRequestRefund_CreatesPendingRequest(t *testing.T) {
	refunds := new(mockRefundRepo)
	payments := new(mockPaymentRepo)

	payments.On("FindByID", mock.Anything, uint(4)).Return(linkedPayment(), nil)
	refunds.On("FindByUserAndPayment", mock.Anything, uint(7), uint(4)).
		Return(nil, fmt.Errorf("refund request for payment 4: %w", apperror.ErrNotFound))
	refunds.On("Create", mock.Anything, mock.AnythingOfType("*domain.RefundRequest")).Return(nil)

	h := NewRequestRefundHandler(refunds, payments)
	request, err := h.Handle(context.Background(), RequestRefundCommand{
		UserID:    7,
		PaymentID: 4,
		Reason:    "wrong size",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, request.Status)
	assert.Equal(t, 80.00, request.OriginalAmount)
}

func TestRequestRefund_DuplicateConflicts(t *testing.T) {
	refunds := new(mockRefundRepo)
	payments := new(mockPaymentRepo)

	payments.On("FindByID", mock.Anything, uint(4)).Return(linkedPayment(), nil)
	refunds.On("FindByUserAndPayment", mock.Anything, uint(7), uint(4)).
		Return(pendingRequest(), nil)

	h := NewRequestRefundHandler(refunds, payments)
	_, err := h.Handle(context.Background(), RequestRefundCommand{
		UserID:    7,
		PaymentID: 4,
		Reason:    "changed my mind",
	})

	assert.ErrorIs(t, err, apperror.ErrConflict)
	refunds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestRefund_SomeoneElsesPaymentIsNotFound(t *testing.T) {
	refunds := new(mockRefundRepo)
	payments := new(mockPaymentRepo)

	payments.On("FindByID", mock.Anything, uint(4)).Return(linkedPayment(), nil)

	h := NewRequestRefundHandler(refunds, payments)
	_, err := h.Handle(context.Background(), RequestRefundCommand{
		UserID:    99,
		PaymentID: 4,
		Reason:    "not mine anyway",
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRequestRefund_ReasonRequired(t *testing.T) {
	h := NewRequestRefundHandler(new(mockRefundRepo), new(mockPaymentRepo))
	_, err := h.Handle(context.Background(), RequestRefundCommand{UserID: 7, PaymentID: 4})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
