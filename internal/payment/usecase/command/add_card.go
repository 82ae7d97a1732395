package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/snazzy/storefront/internal/payment/domain"
	"github.com/snazzy/storefront/internal/payment/gateway"
	userdomain "github.com/snazzy/storefront/internal/user/domain"
	"github.com/snazzy/storefront/pkg/apperror"
)

// AddCardCommand represents the command to store a new payment method
type AddCardCommand struct {
	UserID         uint
	StripeMethodID string
}

// AddCardHandler attaches a gateway payment method to the user's gateway
// customer (created lazily on first use) and stores the masked metadata.
type AddCardHandler struct {
	methods domain.PaymentMethodRepository
	users   userdomain.UserRepository
	gateway gateway.Gateway
}

func NewAddCardHandler(methods domain.PaymentMethodRepository, users userdomain.UserRepository, gw gateway.Gateway) *AddCardHandler {
	return &AddCardHandler{methods: methods, users: users, gateway: gw}
}

// Handle executes the add card command
func (h *AddCardHandler) Handle(ctx context.Context, cmd AddCardCommand) (*domain.PaymentMethod, error) {
	if cmd.StripeMethodID == "" {
		return nil, fmt.Errorf("payment method id is required: %w", apperror.ErrValidation)
	}

	user, err := h.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	// Duplicate cards are rejected before touching the gateway.
	if _, err := h.methods.FindByStripeID(ctx, cmd.StripeMethodID); err == nil {
		return nil, fmt.Errorf("card already added: %w", apperror.ErrConflict)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	customerID := user.StripeCustomerID
	if customerID == "" {
		customerID, err = h.gateway.CreateCustomer(ctx, user.Email, user.FullName)
		if err != nil {
			return nil, err
		}
		if err := h.users.SetStripeCustomerID(ctx, user.ID, customerID); err != nil {
			return nil, fmt.Errorf("failed to store gateway customer id: %w", err)
		}
	}

	if err := h.gateway.AttachPaymentMethod(ctx, customerID, cmd.StripeMethodID); err != nil {
		return nil, err
	}
	if err := h.gateway.SetDefaultPaymentMethod(ctx, customerID, cmd.StripeMethodID); err != nil {
		return nil, err
	}

	card, err := h.gateway.GetPaymentMethod(ctx, cmd.StripeMethodID)
	if err != nil {
		return nil, err
	}

	method := &domain.PaymentMethod{
		UserID:                user.ID,
		StripeCustomerID:      customerID,
		StripePaymentMethodID: cmd.StripeMethodID,
		CardBrand:             card.Brand,
		Last4:                 card.Last4,
		ExpMonth:              card.ExpMonth,
		ExpYear:               card.ExpYear,
	}

	if err := h.methods.Create(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to store payment method: %w", err)
	}

	return method, nil
}
