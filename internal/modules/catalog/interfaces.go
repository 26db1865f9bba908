package catalog

import (
	"context"

	"petshop/internal/domain"
)

type ItemRepository interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id int64) error
}
