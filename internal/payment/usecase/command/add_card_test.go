package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, apperror.ErrNotFound)
}

func TestAddCard_CreatesCustomerLazily(t *testing.T) {
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com", FullName: "Jo Doe"}, nil)
	methods.On("FindByStripeID", mock.Anything, "pm_new").Return(nil, notFound("payment method pm_new"))
	gw.On("CreateCustomer", mock.Anything, "jo@example.com", "Jo Doe").Return("cus_777", nil)
	users.On("SetStripeCustomerID", mock.Anything, uint(7), "cus_777").Return(nil)
	gw.On("AttachPaymentMethod", mock.Anything, "cus_777", "pm_new").Return(nil)
	gw.On("SetDefaultPaymentMethod", mock.Anything, "cus_777", "pm_new").Return(nil)
	gw.On("GetPaymentMethod", mock.Anything, "pm_new").
		Return(&gateway.Card{Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030}, nil)
	methods.On("Create", mock.Anything, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

	h := NewAddCardHandler(methods, users, gw)
	method, err := h.Handle(context.Background(), AddCardCommand{UserID: 7, StripeMethodID: "pm_new"})

	assert.NoError(t, err)
	assert.Equal(t, "cus_777", method.StripeCustomerID)
	assert.Equal(t, "4242", method.Last4)
	gw.AssertExpectations(t)
	users.AssertExpectations(t)
	methods.AssertExpectations(t)
}

func TestAddCard_ReusesExistingCustomer(t *testing.T) {
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com", StripeCustomerID: "cus_123"}, nil)
	methods.On("FindByStripeID", mock.Anything, "pm_new").Return(nil, notFound("payment method pm_new"))
	gw.On("AttachPaymentMethod", mock.Anything, "cus_123", "pm_new").Return(nil)
	gw.On("SetDefaultPaymentMethod", mock.Anything, "cus_123", "pm_new").Return(nil)
	gw.On("GetPaymentMethod", mock.Anything, "pm_new").
		Return(&gateway.Card{Brand: "mastercard", Last4: "1111"}, nil)
	methods.On("Create", mock.Anything, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

	h := NewAddCardHandler(methods, users, gw)
	_, err := h.Handle(context.Background(), AddCardCommand{UserID: 7, StripeMethodID: "pm_new"})

	assert.NoError(t, err)
	gw.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "SetStripeCustomerID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCard_DuplicateMethodConflicts(t *testing.T) {
	methods := new(mockMethodRepo)
	users := new(mockUserRepo)
	gw := new(mockGateway)

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, StripeCustomerID: "cus_123"}, nil)
	methods.On("FindByStripeID", mock.Anything, "pm_dup").
		Return(&domain.PaymentMethod{ID: 1, StripePaymentMethodID: "pm_dup"}, nil)

	h := NewAddCardHandler(methods, users, gw)
	_, err := h.Handle(context.Background(), AddCardCommand{UserID: 7, StripeMethodID: "pm_dup"})

	assert.ErrorIs(t, err, apperror.ErrConflict)
	gw.AssertNotCalled(t, "AttachPaymentMethod", mock.Anything, mock.Anything, mock.Anything)
	methods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRemoveCard_DetachFailureStillDeletes(t *testing.T) {
	methods := new(mockMethodRepo)
	gw := new(mockGateway)

	methods.On("FindByID", mock.Anything, uint(3)).Return(storedMethod(), nil)
	gw.On("DetachPaymentMethod", mock.Anything, "pm_abc").
		Return(fmt.Errorf("stripe detach payment method: %w", apperror.ErrGateway))
	methods.On("Delete", mock.Anything, uint(3)).Return(nil)

	h := NewRemoveCardHandler(methods, gw)
	err := h.Handle(context.Background(), RemoveCardCommand{UserID: 7, CardID: 3})

	assert.NoError(t, err)
	methods.AssertExpectations(t)
}

func TestRemoveCard_OtherUsersCardIsNotFound(t *testing.T) {
	methods := new(mockMethodRepo)
	gw := new(mockGateway)

	methods.On("FindByID", mock.Anything, uint(3)).Return(storedMethod(), nil)

	h := NewRemoveCardHandler(methods, gw)
	err := h.Handle(context.Background(), RemoveCardCommand{UserID: 99, CardID: 3})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	methods.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
