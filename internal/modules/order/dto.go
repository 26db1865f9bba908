package order

import "petshop/internal/repository"

type OrderLineRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int64 `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	UserID        int64              `json:"user_id" binding:"required"`
	Items         []OrderLineRequest `json:"items" binding:"required"`
	BankName      string             `json:"bank"`
	PaymentMethod string             `json:"payment_method"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CheckoutResult is what the client needs to complete payment.
type CheckoutResult struct {
	OrderID  int64  `json:"order_id"`
	Total    int64  `json:"total"`
	VANumber string `json:"va_number"`
	BankName string `json:"bank"`
	Status   string `json:"status"`
}

type OrderResponse struct {
	ID            int64                        `json:"id"`
	Total         int64                        `json:"total"`
	Status        string                       `json:"status"`
	PaymentMethod string                       `json:"payment_method"`
	BankName      string                       `json:"bank_name,omitempty"`
	VANumber      string                       `json:"va_number,omitempty"`
	CancelReason  string                       `json:"cancel_reason,omitempty"`
	CreatedAt     string                       `json:"created_at"`
	Items         []repository.OrderLineDetail `json:"items"`
}
