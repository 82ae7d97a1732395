package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/snazzy/storefront/kafka"
	"github.com/snazzy/storefront/pkg/logger"
)

// Sender is the mail delivery contract, satisfied by Mailer.
type Sender interface {
	Send(to, subject, htmlBody string, attachmentName string, attachment []byte) error
}

// OrderCreatedHandler returns the event handler that mails the order
// receipt with the PDF invoice attached.
func OrderCreatedHandler(mailer Sender) kafka.EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event kafka.OrderCreatedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode order created event: %w", err)
		}
		if event.CustomerEmail == "" {
			logger.Warn(ctx).Uint("order_id", event.OrderID).Msg("order event without customer email, mail skipped")
			return nil
		}

		invoice, invoiceNo, err := RenderInvoice(event)
		if err != nil {
			return err
		}

		subject := fmt.Sprintf("Your order #%d is confirmed", event.OrderID)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for your order of <b>%s</b>. "+
				"We charged <b>$%.2f</b>; your invoice %s is attached.</p>",
			event.CustomerName, event.ProductName, event.TotalPrice, invoiceNo)

		if err := mailer.Send(event.CustomerEmail, subject, body, invoiceNo+".pdf", invoice); err != nil {
			return err
		}

		logger.Info(ctx).
			Uint("order_id", event.OrderID).
			Str("invoice", invoiceNo).
			Msg("receipt mail sent")
		return nil
	}
}

// RefundDecidedHandler returns the event handler that mails the refund
// approval or rejection notice.
func RefundDecidedHandler(mailer Sender) kafka.EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event kafka.RefundDecidedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode refund decided event: %w", err)
		}
		if event.CustomerEmail == "" {
			logger.Warn(ctx).Uint("request_id", event.RequestID).Msg("refund event without customer email, mail skipped")
			return nil
		}

		notice, err := RenderRefundNotice(event)
		if err != nil {
			return err
		}

		var subject, body string
		if event.Approved {
			subject = fmt.Sprintf("Your refund for request #%d was approved", event.RequestID)
			body = fmt.Sprintf(
				"<p>Hi %s,</p><p>We approved your refund of <b>$%.2f</b>. "+
					"It should reach your card within a few business days.</p>",
				event.CustomerName, event.RefundAmount)
		} else {
			subject = fmt.Sprintf("Update on your refund request #%d", event.RequestID)
			body = fmt.Sprintf(
				"<p>Hi %s,</p><p>We could not approve your refund request.</p><p>%s</p>",
				event.CustomerName, event.AdminResponse)
		}

		if err := mailer.Send(event.CustomerEmail, subject, body, "refund-notice.pdf", notice); err != nil {
			return err
		}

		logger.Info(ctx).
			Uint("request_id", event.RequestID).
			Bool("approved", event.Approved).
			Msg("refund decision mail sent")
		return nil
	}
}
