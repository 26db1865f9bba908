package cart

import (
	"context"

	"petshop/internal/domain"
	"petshop/internal/repository"
)

type CartRepository interface {
	AddLine(ctx context.Context, userID, itemID, quantity int64) (*domain.CartLine, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.CartLineDetail, error)
	RemoveLine(ctx context.Context, userID, itemID int64) error
}

type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}
