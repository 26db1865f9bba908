package catalog

import (
	"context"
	"time"

	"petshop/internal/domain"
)

type Service struct {
	items   ItemRepository
	loggerf func(format string, args ...interface{})
}

func NewService(items ItemRepository, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{items: items, loggerf: loggerf}
}

func validCategory(c string) bool {
	switch domain.ItemCategory(c) {
	case domain.CategoryFood, domain.CategoryAccessory, domain.CategoryService:
		return true
	}
	return false
}

func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*domain.Item, error) {
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	it := &domain.Item{
		Name:        req.Name,
		Category:    domain.ItemCategory(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=item created item_id=%d name=%q category=%s", it.ID, it.Name, it.Category)
	return it, nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req UpdateItemRequest) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		it.Category = domain.ItemCategory(*req.Category)
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
	if req.Stock != nil {
		it.Stock = *req.Stock
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.ImageURL != nil {
		it.ImageURL = *req.ImageURL
	}

	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.loggerf("level=info msg=item deleted item_id=%d", id)
	return nil
}
