package command

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/order/domain"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/kafka"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID == 0 {
		order.ID = 1
	}
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByPaymentID(ctx context.Context, paymentID uint) (*domain.Order, error) {
	args := m.Called(ctx, paymentID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
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

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Earn(ctx context.Context, userID uint, n int) (int, error) {
	args := m.Called(ctx, userID, n)
	return args.Int(0), args.Error(1)
}

func (m *mockLedger) Redeem(ctx context.Context, userID uint, n int) (int, error) {
	args := m.Called(ctx, userID, n)
	return args.Int(0), args.Error(1)
}

func (m *mockLedger) Reverse(ctx context.Context, userID uint, n int) (int, error) {
	args := m.Called(ctx, userID, n)
	return args.Int(0), args.Error(1)
}

func (m *mockLedger) Restore(ctx context.Context, userID uint, n int) (int, error) {
	args := m.Called(ctx, userID, n)
	return args.Int(0), args.Error(1)
}

type mockCart struct {
	mock.Mock
}

func (m *mockCart) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
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

// fakePromotionRepo serves a fixed promotion catalog for the pricing quoter.
type fakePromotionRepo struct {
	promotions []promodomain.Promotion
}

func (f *fakePromotionRepo) Create(ctx context.Context, p *promodomain.Promotion) error { return nil }
func (f *fakePromotionRepo) FindByID(ctx context.Context, id uint) (*promodomain.Promotion, error) {
	return nil, nil
}
func (f *fakePromotionRepo) FindAll(ctx context.Context) ([]promodomain.Promotion, error) {
	return f.promotions, nil
}
func (f *fakePromotionRepo) FindByProductID(ctx context.Context, productID string) ([]promodomain.Promotion, error) {
	var out []promodomain.Promotion
	for _, p := range f.promotions {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePromotionRepo) Update(ctx context.Context, p *promodomain.Promotion) error { return nil }
func (f *fakePromotionRepo) Delete(ctx context.Context, id uint) error                  { return nil }
