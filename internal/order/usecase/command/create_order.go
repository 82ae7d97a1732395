package command

import (
	"context"
	"fmt"
	"math"

	"github.com/snazzy/storefront/internal/loyalty"
	"github.com/snazzy/storefront/internal/order/domain"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	promodomain "github.com/snazzy/storefront/internal/promotion/domain"
	promoquery "github.com/snazzy/storefront/internal/promotion/usecase/query"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/kafka"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// CartClearer is the slice of the cart contract checkout needs.
type CartClearer interface {
	Clear(ctx context.Context, userID uint) error
}

// CreateOrderCommand represents the command to place an order
type CreateOrderCommand struct {
	UserID          uint
	CustomerName    string
	CustomerAddress string
	ProductID       string
	ProductName     string
	Size            string
	Quantity        int
	BasePrice       float64
	RedeemPoints    bool
	// TotalPrice is the client's claimed total; it is verified against the
	// server-side recomputation and never trusted.
	TotalPrice float64
	PaymentID  uint
}

// CreateOrderHandler places an order: it reprices the product against the
// live promotion catalog, applies exactly one loyalty ledger operation,
// persists the order and announces it. Pricing is always recomputed
// server-side; a client total that drifts more than a cent is rejected.
type CreateOrderHandler struct {
	orders   domain.OrderRepository
	users    userdomain.UserRepository
	payments paymentdomain.PaymentRepository
	quoter   *promoquery.QuoteProductHandler
	ledger   loyalty.PointLedger
	cart     CartClearer
	events   kafka.EventPublisher
}

func NewCreateOrderHandler(
	orders domain.OrderRepository,
	users userdomain.UserRepository,
	payments paymentdomain.PaymentRepository,
	quoter *promoquery.QuoteProductHandler,
	ledger loyalty.PointLedger,
	cart CartClearer,
	events kafka.EventPublisher,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:   orders,
		users:    users,
		payments: payments,
		quoter:   quoter,
		ledger:   ledger,
		cart:     cart,
		events:   events,
	}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	user, err := h.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	var payment *paymentdomain.Payment
	if cmd.PaymentID != 0 {
		payment, err = h.payments.FindByID(ctx, cmd.PaymentID)
		if err != nil {
			return nil, err
		}
		if payment.UserID != cmd.UserID {
			return nil, fmt.Errorf("payment %d: %w", cmd.PaymentID, apperror.ErrNotFound)
		}
	}

	quote, err := h.quoter.Handle(ctx, promoquery.QuoteProductQuery{
		ProductID: cmd.ProductID,
		BasePrice: cmd.BasePrice,
	})
	if err != nil {
		return nil, err
	}

	willRedeem := cmd.RedeemPoints && user.LoyaltyPoints >= loyalty.PointsPerOrder
	loyaltyDiscount := 0.0
	if willRedeem {
		loyaltyDiscount = loyalty.RedemptionDiscount
	}

	total := promodomain.Round2(quote.DiscountedPrice - loyaltyDiscount)
	if total < 0 {
		total = 0
	}
	if math.Abs(cmd.TotalPrice-total) > 0.01 {
		return nil, fmt.Errorf("client total %.2f does not match priced total %.2f: %w",
			cmd.TotalPrice, total, apperror.ErrValidation)
	}

	// Exactly one ledger operation per order.
	if willRedeem {
		if _, err := h.ledger.Redeem(ctx, cmd.UserID, loyalty.PointsPerOrder); err != nil {
			return nil, err
		}
	} else {
		if _, err := h.ledger.Earn(ctx, cmd.UserID, loyalty.PointsPerOrder); err != nil {
			return nil, err
		}
	}

	order := &domain.Order{
		UserID:            cmd.UserID,
		CustomerName:      cmd.CustomerName,
		CustomerAddress:   cmd.CustomerAddress,
		ProductID:         cmd.ProductID,
		ProductName:       cmd.ProductName,
		Size:              cmd.Size,
		Quantity:          cmd.Quantity,
		BasePrice:         cmd.BasePrice,
		PromotionID:       quote.PromotionID,
		PromotionTitle:    quote.Title,
		PromotionDiscount: quote.Discount,
		PointsRedeemed:    willRedeem,
		LoyaltyDiscount:   loyaltyDiscount,
		TotalPrice:        total,
		PaymentID:         cmd.PaymentID,
		Status:            domain.StatusPending,
	}
	if err := order.Validate(); err != nil {
		h.compensateLedger(ctx, cmd.UserID, willRedeem)
		return nil, err
	}

	if err := h.orders.Create(ctx, order); err != nil {
		h.compensateLedger(ctx, cmd.UserID, willRedeem)
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	// Cart clearing is best effort; a leftover cart never blocks checkout.
	if err := h.cart.Clear(ctx, cmd.UserID); err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", cmd.UserID).Msg("failed to clear cart after checkout")
	}

	event := kafka.OrderCreatedEvent{
		OrderID:         order.ID,
		UserID:          user.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   user.Email,
		CustomerAddress: order.CustomerAddress,
		ProductName:     order.ProductName,
		Size:            order.Size,
		Quantity:        order.Quantity,
		BasePrice:       order.BasePrice,
		PromotionTitle:  order.PromotionTitle,
		PromotionDisc:   order.PromotionDiscount,
		LoyaltyDiscount: order.LoyaltyDiscount,
		TotalPrice:      order.TotalPrice,
	}
	if payment != nil {
		event.PaymentID = payment.StripePaymentID
	}
	if err := h.events.PublishOrderCreated(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("failed to publish order created event")
	}

	return order, nil
}

// compensateLedger undoes the single ledger operation when the order row
// could not be written. Failures here are logged for manual follow-up.
func (h *CreateOrderHandler) compensateLedger(ctx context.Context, userID uint, redeemed bool) {
	var err error
	if redeemed {
		_, err = h.ledger.Restore(ctx, userID, loyalty.PointsPerOrder)
	} else {
		_, err = h.ledger.Reverse(ctx, userID, loyalty.PointsPerOrder)
	}
	if err != nil {
		logger.Error(ctx).Err(err).Uint("user_id", userID).Msg("failed to compensate loyalty ledger")
	}
}
