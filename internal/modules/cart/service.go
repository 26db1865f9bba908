package cart

import (
	"context"

	"petshop/internal/domain"
)

type Service struct {
	carts   CartRepository
	items   ItemReader
	loggerf func(format string, args ...interface{})
}

func NewService(carts CartRepository, items ItemReader, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{carts: carts, items: items, loggerf: loggerf}
}

// AddToCart verifies the item exists before touching the cart; a missing
// quantity defaults to one.
func (s *Service) AddToCart(ctx context.Context, req AddToCartRequest) (*domain.CartLine, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.items.GetByID(ctx, req.ItemID); err != nil {
		return nil, err
	}

	line, err := s.carts.AddLine(ctx, req.UserID, req.ItemID, qty)
	if err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=cart line added user_id=%d item_id=%d quantity=%d", req.UserID, req.ItemID, line.Quantity)
	return line, nil
}

func (s *Service) GetCart(ctx context.Context, userID int64) (*CartResponse, error) {
	lines, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, l := range lines {
		total += l.UnitPrice * l.Quantity
	}
	return &CartResponse{Items: lines, Total: total}, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, itemID int64) error {
	return s.carts.RemoveLine(ctx, userID, itemID)
}
