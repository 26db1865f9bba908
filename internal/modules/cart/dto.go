package cart

import "petshop/internal/repository"

type AddToCartRequest struct {
	UserID   int64 `json:"user_id" binding:"required"`
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	Items []repository.CartLineDetail `json:"items"`
	Total int64                       `json:"total"`
}
