package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/snazzy/storefront/kafka"
)

type fakeSender struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to         string
	subject    string
	attachment []byte
}

func (f *fakeSender) Send(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, attachment: attachment})
	return nil
}

func orderEvent() kafka.OrderCreatedEvent {
	return kafka.OrderCreatedEvent{
		EventID:         "evt_1",
		EventType:       kafka.EventTypeOrderCreated,
		Timestamp:       time.Now().UTC(),
		OrderID:         1,
		UserID:          7,
		CustomerName:    "Jo Doe",
		CustomerEmail:   "jo@example.com",
		CustomerAddress: "1 Main St",
		ProductName:     "Plain Tee",
		Size:            "M",
		Quantity:        2,
		BasePrice:       50.00,
		TotalPrice:      45.00,
		LoyaltyDiscount: 5.00,
	}
}

func TestOrderCreatedHandler_SendsReceiptWithInvoice(t *testing.T) {
	sender := &fakeSender{}
	handler := OrderCreatedHandler(sender)

	payload, _ := json.Marshal(orderEvent())
	err := handler(context.Background(), payload)

	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "jo@example.com", sender.sent[0].to)
	assert.NotEmpty(t, sender.sent[0].attachment)
}

func TestOrderCreatedHandler_SkipsWithoutEmail(t *testing.T) {
	sender := &fakeSender{}
	handler := OrderCreatedHandler(sender)

	event := orderEvent()
	event.CustomerEmail = ""
	payload, _ := json.Marshal(event)

	err := handler(context.Background(), payload)

	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestOrderCreatedHandler_BadPayloadFails(t *testing.T) {
	handler := OrderCreatedHandler(&fakeSender{})
	err := handler(context.Background(), []byte("not json"))
	assert.Error(t, err)
}

func TestRefundDecidedHandler_ApprovalAndRejectionMails(t *testing.T) {
	sender := &fakeSender{}
	handler := RefundDecidedHandler(sender)

	approved := kafka.RefundDecidedEvent{
		RequestID:     10,
		CustomerName:  "Jo Doe",
		CustomerEmail: "jo@example.com",
		Approved:      true,
		RefundAmount:  80.00,
		Timestamp:     time.Now().UTC(),
	}
	payload, _ := json.Marshal(approved)
	assert.NoError(t, handler(context.Background(), payload))

	rejected := approved
	rejected.Approved = false
	rejected.AdminResponse = "outside return window"
	payload, _ = json.Marshal(rejected)
	assert.NoError(t, handler(context.Background(), payload))

	assert.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[0].subject, "approved")
	assert.Contains(t, sender.sent[1].subject, "Update")
}
