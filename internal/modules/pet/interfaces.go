package pet

import (
	"context"

	"petshop/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Pet, error)
	Update(ctx context.Context, p *domain.Pet) error
	Delete(ctx context.Context, id int64) error
}
