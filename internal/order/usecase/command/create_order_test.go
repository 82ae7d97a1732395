package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/snazzy/storefront/internal/order/domain"
	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	promoquery "github.com/snazzy/storefront/internal/promotion/usecase/query"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

type createFixture struct {
	orders   *mockOrderRepo
	users    *mockUserRepo
	payments *mockPaymentRepo
	ledger   *mockLedger
	cart     *mockCart
	events   *mockPublisher
	handler  *CreateOrderHandler
}

func newCreateFixture(promotions []promodomain.Promotion) *createFixture {
	f := &createFixture{
		orders:   new(mockOrderRepo),
		users:    new(mockUserRepo),
		payments: new(mockPaymentRepo),
		ledger:   new(mockLedger),
		cart:     new(mockCart),
		events:   new(mockPublisher),
	}
	quoter := promoquery.NewQuoteProductHandler(&fakePromotionRepo{promotions: promotions})
	f.handler = NewCreateOrderHandler(f.orders, f.users, f.payments, quoter, f.ledger, f.cart, f.events)
	return f
}

func baseCommand() CreateOrderCommand {
	return CreateOrderCommand{
		UserID:          7,
		CustomerName:    "Jo Doe",
		CustomerAddress: "1 Main St",
		ProductID:       "tee-01",
		ProductName:     "Plain Tee",
		Size:            "M",
		Quantity:        2,
		BasePrice:       50.00,
		TotalPrice:      50.00,
	}
}

func TestCreateOrder_EarnsPointsByDefault(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com", LoyaltyPoints: 0}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(nil)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).Return(nil)

	order, err := f.handler.Handle(context.Background(), baseCommand())

	assert.NoError(t, err)
	assert.False(t, order.PointsRedeemed)
	assert.Equal(t, 50.00, order.TotalPrice)
	assert.Equal(t, domain.StatusPending, order.Status)
	f.ledger.AssertExpectations(t)
	f.ledger.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_RedeemsWhenRequestedAndCovered(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com", LoyaltyPoints: 8}, nil)
	f.ledger.On("Redeem", mock.Anything, uint(7), 5).Return(3, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(nil)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).Return(nil)

	cmd := baseCommand()
	cmd.RedeemPoints = true
	cmd.TotalPrice = 45.00 // 50 - $5 loyalty discount

	order, err := f.handler.Handle(context.Background(), cmd)

	assert.NoError(t, err)
	assert.True(t, order.PointsRedeemed)
	assert.Equal(t, 5.00, order.LoyaltyDiscount)
	assert.Equal(t, 45.00, order.TotalPrice)
	f.ledger.AssertNotCalled(t, "Earn", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_RedeemRequestWithLowBalanceEarnsInstead(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com", LoyaltyPoints: 3}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(8, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(nil)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).Return(nil)

	cmd := baseCommand()
	cmd.RedeemPoints = true // only 3 points, not enough to redeem

	order, err := f.handler.Handle(context.Background(), cmd)

	assert.NoError(t, err)
	assert.False(t, order.PointsRedeemed)
	assert.Equal(t, 0.0, order.LoyaltyDiscount)
	f.ledger.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_AppliesActivePromotion(t *testing.T) {
	now := time.Now().UTC()
	f := newCreateFixture([]promodomain.Promotion{{
		ID:        4,
		Title:     "Summer Sale",
		ProductID: "tee-01",
		Discount:  20,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}})

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(nil)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).Return(nil)

	cmd := baseCommand()
	cmd.TotalPrice = 40.00 // 50 - 20%

	order, err := f.handler.Handle(context.Background(), cmd)

	assert.NoError(t, err)
	assert.Equal(t, uint(4), order.PromotionID)
	assert.Equal(t, "Summer Sale", order.PromotionTitle)
	assert.Equal(t, 10.00, order.PromotionDiscount)
	assert.Equal(t, 40.00, order.TotalPrice)
}

func TestCreateOrder_RejectsTamperedTotal(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)

	cmd := baseCommand()
	cmd.TotalPrice = 1.00 // claims a total far below the priced one

	_, err := f.handler.Handle(context.Background(), cmd)

	assert.ErrorIs(t, err, apperror.ErrValidation)
	f.ledger.AssertNotCalled(t, "Earn", mock.Anything, mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_CartClearFailureIsSwallowed(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(assert.AnError)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).Return(nil)

	_, err := f.handler.Handle(context.Background(), baseCommand())

	assert.NoError(t, err)
}

func TestCreateOrder_PublishFailureIsSwallowed(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.cart.On("Clear", mock.Anything, uint(7)).Return(nil)
	f.events.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("kafka.OrderCreatedEvent")).
		Return(assert.AnError)

	order, err := f.handler.Handle(context.Background(), baseCommand())

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCreateOrder_PersistFailureCompensatesLedger(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(assert.AnError)
	f.ledger.On("Reverse", mock.Anything, uint(7), 5).Return(0, nil)

	_, err := f.handler.Handle(context.Background(), baseCommand())

	assert.Error(t, err)
	f.ledger.AssertCalled(t, "Reverse", mock.Anything, uint(7), 5)
}

func TestCreateOrder_InvalidSizeRejected(t *testing.T) {
	f := newCreateFixture(nil)

	f.users.On("FindByID", mock.Anything, uint(7)).
		Return(&userdomain.User{ID: 7, Email: "jo@example.com"}, nil)
	f.ledger.On("Earn", mock.Anything, uint(7), 5).Return(5, nil)
	f.ledger.On("Reverse", mock.Anything, uint(7), 5).Return(0, nil)

	cmd := baseCommand()
	cmd.Size = "XXXL"

	_, err := f.handler.Handle(context.Background(), cmd)

	assert.ErrorIs(t, err, apperror.ErrValidation)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
