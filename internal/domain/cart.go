package domain

import "time"

// CartLine is one (user, item, quantity) row. Checkout removes every line of
// the user whose item id appears in the order.
type CartLine struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
