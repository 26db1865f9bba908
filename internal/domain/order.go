package domain

import "time"

type OrderStatus string

const (
	OrderAwaitingPayment      OrderStatus = "awaiting_payment"
	OrderAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderProcessing           OrderStatus = "processing"
	OrderShipped              OrderStatus = "shipped"
	OrderDelivered            OrderStatus = "delivered"
	OrderCompleted            OrderStatus = "completed"
	OrderCancelled            OrderStatus = "cancelled"
)

// CanPay reports whether the pay transition is legal from this status.
func (s OrderStatus) CanPay() bool {
	return s == OrderAwaitingPayment
}

// CanCancel reports whether cancellation is legal from this status.
// Shipped, delivered and terminal orders stay as they are.
func (s OrderStatus) CanCancel() bool {
	switch s {
	case OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled:
		return false
	}
	return true
}

type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	Total         int64       `json:"total"`
	Status        OrderStatus `json:"status"`
	BankName      string      `json:"bank_name,omitempty"`
	VANumber      string      `json:"va_number,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	CancelReason  string      `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`

	Lines []OrderLine `json:"lines,omitempty"`
}

// OrderLine freezes the quantity and subtotal at creation time; later catalog
// price changes never touch it.
type OrderLine struct {
	ID       int64 `json:"id"`
	OrderID  int64 `json:"order_id"`
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
	Subtotal int64 `json:"subtotal"`
}
