package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	orderdomain "github.com/snazzy/storefront/internal/order/domain"
	ordercommand "github.com/snazzy/storefront/internal/order/usecase/command"
	paymentdomain "github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	"github.com/snazzy/storefront/internal/refund/domain"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/kafka"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// Decision actions accepted by the decide endpoint
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// OrderDeleter removes an order and unwinds its loyalty effect.
type OrderDeleter interface {
	Handle(ctx context.Context, cmd ordercommand.DeleteOrderCommand) error
}

// DecideRefundCommand represents an admin ruling on a refund request
type DecideRefundCommand struct {
	RequestID     uint
	Action        string
	AdminResponse string
}

// DecideRefundHandler settles a pending refund request. Approval first
// secures the money movement at the gateway; only then does the request
// flip to Approved. The follow-up effects, removing the linked order and
// announcing the decision, are independent of each other and never roll
// back an approval.
type DecideRefundHandler struct {
	refunds  domain.RefundRepository
	payments paymentdomain.PaymentRepository
	orders   orderdomain.OrderRepository
	users    userdomain.UserRepository
	gateway  gateway.Gateway
	deleter  OrderDeleter
	events   kafka.EventPublisher
}

func NewDecideRefundHandler(
	refunds domain.RefundRepository,
	payments paymentdomain.PaymentRepository,
	orders orderdomain.OrderRepository,
	users userdomain.UserRepository,
	gw gateway.Gateway,
	deleter OrderDeleter,
	events kafka.EventPublisher,
) *DecideRefundHandler {
	return &DecideRefundHandler{
		refunds:  refunds,
		payments: payments,
		orders:   orders,
		users:    users,
		gateway:  gw,
		deleter:  deleter,
		events:   events,
	}
}

// Handle executes the decide refund command
func (h *DecideRefundHandler) Handle(ctx context.Context, cmd DecideRefundCommand) (*domain.RefundRequest, error) {
	var next domain.Status
	switch cmd.Action {
	case ActionApprove:
		next = domain.StatusApproved
	case ActionReject:
		next = domain.StatusRejected
	default:
		return nil, fmt.Errorf("unknown action %q: %w", cmd.Action, apperror.ErrValidation)
	}

	request, err := h.refunds.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if err := request.Status.Transition(next); err != nil {
		return nil, err
	}

	payment, err := h.payments.FindByID(ctx, request.PaymentID)
	if err != nil {
		return nil, err
	}

	// A recorded refund id on a still-pending request means a prior
	// approval attempt already moved the money but failed to flip the
	// status; the retry must not hit the gateway again.
	if next == domain.StatusApproved && request.StripeRefundID == "" {
		// Money moves first. If the gateway call fails or times out the
		// request stays pending and the admin can retry.
		refund, err := h.gateway.CreateRefund(ctx, payment.StripePaymentID)
		if err != nil {
			return nil, err
		}
		request.RefundAmount = refund.Amount
		request.StripeRefundID = refund.ID
		if err := h.refunds.Update(ctx, request); err != nil {
			logger.Error(ctx).Err(err).
				Uint("request_id", request.ID).
				Str("stripe_refund_id", request.StripeRefundID).
				Msg("refund issued at gateway but refund id could not be recorded")
			return nil, fmt.Errorf("failed to record issued refund: %w", err)
		}
	}

	now := time.Now().UTC()
	request.Status = next
	request.AdminResponse = cmd.AdminResponse
	request.DecidedAt = &now
	if err := h.refunds.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update refund request: %w", err)
	}

	if next == domain.StatusApproved {
		h.removeLinkedOrder(ctx, request)
	}
	h.publishDecision(ctx, request, payment)

	return request, nil
}

// removeLinkedOrder deletes the order tied to the refunded payment. The
// order may already be gone; any failure is logged and the approval stands.
func (h *DecideRefundHandler) removeLinkedOrder(ctx context.Context, request *domain.RefundRequest) {
	order, err := h.orders.FindByPaymentID(ctx, request.PaymentID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			logger.Error(ctx).Err(err).Uint("payment_id", request.PaymentID).
				Msg("failed to look up order for approved refund")
		}
		return
	}
	if err := h.deleter.Handle(ctx, ordercommand.DeleteOrderCommand{OrderID: order.ID}); err != nil {
		logger.Error(ctx).Err(err).Uint("order_id", order.ID).
			Uint("request_id", request.ID).
			Msg("failed to remove order for approved refund")
	}
}

func (h *DecideRefundHandler) publishDecision(ctx context.Context, request *domain.RefundRequest, payment *paymentdomain.Payment) {
	user, err := h.users.FindByID(ctx, request.UserID)
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", request.UserID).
			Msg("refund decided but user lookup failed, notification skipped")
		return
	}

	event := kafka.RefundDecidedEvent{
		RequestID:        request.ID,
		UserID:           request.UserID,
		CustomerName:     user.FullName,
		CustomerEmail:    user.Email,
		Approved:         request.Status == domain.StatusApproved,
		Reason:           request.Reason,
		AdminResponse:    request.AdminResponse,
		OriginalAmount:   request.OriginalAmount,
		RefundAmount:     request.RefundAmount,
		GatewayPaymentID: payment.StripePaymentID,
		GatewayRefundID:  request.StripeRefundID,
	}
	if err := h.events.PublishRefundDecided(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Uint("request_id", request.ID).
			Msg("failed to publish refund decided event")
	}
}
