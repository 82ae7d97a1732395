package kafka

import "time"

// OrderCreatedEvent is published after an order and its payment have been
// committed. The notifier consumes it to send the receipt mail with the
// PDF invoice attached.
type OrderCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`

	OrderID         uint    `json:"order_id"`
	UserID          uint    `json:"user_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerAddress string  `json:"customer_address"`
	ProductName     string  `json:"product_name"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	BasePrice       float64 `json:"base_price"`
	PromotionTitle  string  `json:"promotion_title,omitempty"`
	PromotionDisc   float64 `json:"promotion_discount"`
	LoyaltyDiscount float64 `json:"loyalty_discount"`
	TotalPrice      float64 `json:"total_price"`
	PaymentID       string  `json:"payment_id"`
	CardLast4       string  `json:"card_last4,omitempty"`
}

// RefundDecidedEvent is published after a refund request reaches a
// terminal state. The notifier sends the approval or rejection mail.
type RefundDecidedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`

	RequestID        uint    `json:"request_id"`
	UserID           uint    `json:"user_id"`
	CustomerName     string  `json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	Approved         bool    `json:"approved"`
	Reason           string  `json:"reason,omitempty"`
	AdminResponse    string  `json:"admin_response,omitempty"`
	OriginalAmount   float64 `json:"original_amount"`
	RefundAmount     float64 `json:"refund_amount,omitempty"`
	GatewayPaymentID string  `json:"gateway_payment_id"`
	GatewayRefundID  string  `json:"gateway_refund_id,omitempty"`
}

// Event types
const (
	EventTypeOrderCreated  = "order.created"
	EventTypeRefundDecided = "refund.decided"
)

// Kafka topics
const (
	TopicOrderCreated  = "order-created"
	TopicRefundDecided = "refund-decided"
)
