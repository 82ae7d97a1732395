package command

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
)

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uint) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockMethodRepo struct {
	mock.Mock
}

func (m *mockMethodRepo) Create(ctx context.Context, method *domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *mockMethodRepo) FindByID(ctx context.Context, id uint) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.PaymentMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMethodRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]domain.PaymentMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMethodRepo) FindByStripeID(ctx context.Context, stripeMethodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, stripeMethodID)
	if v := args.Get(0); v != nil {
		return v.(*domain.PaymentMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMethodRepo) FindByUserAndStripeID(ctx context.Context, userID uint, stripeMethodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, userID, stripeMethodID)
	if v := args.Get(0); v != nil {
		return v.(*domain.PaymentMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMethodRepo) Update(ctx context.Context, method *domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *mockMethodRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *userdomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*userdomain.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*userdomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*userdomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*userdomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetStripeCustomerID(ctx context.Context, id uint, customerID string) error {
	args := m.Called(ctx, id, customerID)
	return args.Error(0)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) AttachPaymentMethod(ctx context.Context, customerID, methodID string) error {
	args := m.Called(ctx, customerID, methodID)
	return args.Error(0)
}

func (m *mockGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, methodID string) error {
	args := m.Called(ctx, customerID, methodID)
	return args.Error(0)
}

func (m *mockGateway) GetPaymentMethod(ctx context.Context, methodID string) (*gateway.Card, error) {
	args := m.Called(ctx, methodID)
	if v := args.Get(0); v != nil {
		return v.(*gateway.Card), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) DetachPaymentMethod(ctx context.Context, methodID string) error {
	args := m.Called(ctx, methodID)
	return args.Error(0)
}

func (m *mockGateway) CreateCharge(ctx context.Context, amount float64, currency, customerID, methodID string) (*gateway.Charge, error) {
	args := m.Called(ctx, amount, currency, customerID, methodID)
	if v := args.Get(0); v != nil {
		return v.(*gateway.Charge), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) CreateRefund(ctx context.Context, chargeID string) (*gateway.Refund, error) {
	args := m.Called(ctx, chargeID)
	if v := args.Get(0); v != nil {
		return v.(*gateway.Refund), args.Error(1)
	}
	return nil, args.Error(1)
}
