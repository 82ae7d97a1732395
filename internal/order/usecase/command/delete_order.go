package command

import (
	"context"
	"errors"

	"github.com/snazzy/storefront/internal/loyalty"
	"github.com/snazzy/storefront/internal/order/domain"
	"github.com/snazzy/storefront/pkg/apperror"
	"github.com/snazzy/storefront/pkg/logger"
)

// DeleteOrderCommand represents the command to remove an order
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler removes an order and unwinds its loyalty effect:
// an earning order has its 5 points taken back (saturating at zero), a
// redeeming order gets its 5 points credited back. A user who no longer
// exists does not block the deletion.
type DeleteOrderHandler struct {
	orders domain.OrderRepository
	ledger loyalty.PointLedger
}

func NewDeleteOrderHandler(orders domain.OrderRepository, ledger loyalty.PointLedger) *DeleteOrderHandler {
	return &DeleteOrderHandler{orders: orders, ledger: ledger}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	order, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return err
	}

	if err := h.orders.Delete(ctx, cmd.OrderID); err != nil {
		return err
	}

	if order.PointsRedeemed {
		_, err = h.ledger.Restore(ctx, order.UserID, loyalty.PointsPerOrder)
	} else {
		_, err = h.ledger.Reverse(ctx, order.UserID, loyalty.PointsPerOrder)
	}
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.Warn(ctx).Uint("user_id", order.UserID).Uint("order_id", order.ID).
				Msg("loyalty reversal skipped, user no longer exists")
			return nil
		}
		logger.Error(ctx).Err(err).Uint("user_id", order.UserID).Uint("order_id", order.ID).
			Msg("failed to unwind loyalty points for deleted order")
		return nil
	}

	return nil
}
