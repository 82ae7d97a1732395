package command

import (
	"context"

	"github.com/stretchr/testify/mock"

	orderdomain "github.com/snazzy/storefront/internal/order/domain"
	ordercommand "github.com/snazzy/storefront/internal/order/usecase/command"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/internal/refund/domain"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/kafka"
)

type mockRefundRepo struct {
	mock.Mock
}

func (m *mockRefundRepo) Create(ctx context.Context, request *domain.RefundRequest) error {
	args := m.Called(ctx, request)
	if args.Error(0) == nil && request.ID == 0 {
		request.ID = 1
	}
	return args.Error(0)
}

func (m *mockRefundRepo) FindByID(ctx context.Context, id uint) (*domain.RefundRequest, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.RefundRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefundRepo) FindAll(ctx context.Context) ([]domain.RefundRequest, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.RefundRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefundRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.RefundRequest, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]domain.RefundRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefundRepo) FindByUserAndPayment(ctx context.Context, userID, paymentID uint) (*domain.RefundRequest, error) {
	args := m.Called(ctx, userID, paymentID)
	if v := args.Get(0); v != nil {
		return v.(*domain.RefundRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRefundRepo) Update(ctx context.Context, request *domain.RefundRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *paymentdomain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uint) (*paymentdomain.Payment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*paymentdomain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) FindByUserID(ctx context.Context, userID uint) ([]paymentdomain.Payment, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]paymentdomain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *orderdomain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*orderdomain.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*orderdomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]orderdomain.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]orderdomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID uint) ([]orderdomain.Order, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]orderdomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByPaymentID(ctx context.Context, paymentID uint) (*orderdomain.Order, error) {
	args := m.Called(ctx, paymentID)
	if v := args.Get(0); v != nil {
		return v.(*orderdomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *orderdomain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint) error {
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

type mockOrderDeleter struct {
	mock.Mock
}

func (m *mockOrderDeleter) Handle(ctx context.Context, cmd ordercommand.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishOrderCreated(ctx context.Context, event kafka.OrderCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPublisher) PublishRefundDecided(ctx context.Context, event kafka.RefundDecidedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
