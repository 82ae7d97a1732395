package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/pkg/apperror"
)

func storedMethod() *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:                    3,
		UserID:                7,
		StripeCustomerID:      "cus_123",
		StripePaymentMethodID: "pm_abc",
		CardBrand:             "visa",
		Last4:                 "4242",
	}
}

func TestCharge_Success(t *testing.T) {
	payments := new(mockPaymentRepo)
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	methods.On("FindByUserAndStripeID", mock.Anything, uint(7), "pm_abc").Return(storedMethod(), nil)
	gw.On("CreateCharge", mock.Anything, 80.0, "usd", "cus_123", "pm_abc").
		Return(&gateway.Charge{ID: "pi_1", Status: "succeeded"}, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	h := NewChargeHandler(payments, methods, users, gw)
	payment, err := h.Handle(context.Background(), ChargeCommand{
		UserID:         7,
		Amount:         80.0,
		StripeMethodID: "pm_abc",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pi_1", payment.StripePaymentID)
	assert.Equal(t, "succeeded", payment.Status)
	assert.Equal(t, uint(7), payment.UserID)
	payments.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestCharge_GatewayFailureWritesNoRecord(t *testing.T) {
	payments := new(mockPaymentRepo)
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	methods.On("FindByUserAndStripeID", mock.Anything, uint(7), "pm_abc").Return(storedMethod(), nil)
	gw.On("CreateCharge", mock.Anything, 50.0, "usd", "cus_123", "pm_abc").
		Return(nil, fmt.Errorf("stripe create charge: card declined: %w", apperror.ErrGateway))

	h := NewChargeHandler(payments, methods, users, gw)
	_, err := h.Handle(context.Background(), ChargeCommand{
		UserID:         7,
		Amount:         50.0,
		StripeMethodID: "pm_abc",
	})

	assert.ErrorIs(t, err, apperror.ErrGateway)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCharge_TimeoutIsIndeterminate(t *testing.T) {
	payments := new(mockPaymentRepo)
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	methods.On("FindByUserAndStripeID", mock.Anything, uint(7), "pm_abc").Return(storedMethod(), nil)
	gw.On("CreateCharge", mock.Anything, 50.0, "usd", "cus_123", "pm_abc").
		Return(nil, fmt.Errorf("stripe create charge timed out: %w", apperror.ErrIndeterminate))

	h := NewChargeHandler(payments, methods, users, gw)
	_, err := h.Handle(context.Background(), ChargeCommand{
		UserID:         7,
		Amount:         50.0,
		StripeMethodID: "pm_abc",
	})

	assert.ErrorIs(t, err, apperror.ErrIndeterminate)
	assert.NotErrorIs(t, err, apperror.ErrGateway)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCharge_MethodMustBelongToUser(t *testing.T) {
	payments := new(mockPaymentRepo)
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	methods.On("FindByUserAndStripeID", mock.Anything, uint(9), "pm_abc").
		Return(nil, fmt.Errorf("payment method pm_abc: %w", apperror.ErrNotFound))

	h := NewChargeHandler(payments, methods, users, gw)
	_, err := h.Handle(context.Background(), ChargeCommand{
		UserID:         9,
		Amount:         50.0,
		StripeMethodID: "pm_abc",
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	gw.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCharge_RejectsNonPositiveAmount(t *testing.T) {
	h := NewChargeHandler(new(mockPaymentRepo), new(mockMethodRepo), new(mockUserRepo), new(mockGateway))
	_, err := h.Handle(context.Background(), ChargeCommand{UserID: 7, Amount: 0, StripeMethodID: "pm_abc"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
