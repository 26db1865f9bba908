package pet

import (
	"context"
	"time"

	"petshop/internal/domain"
)

type Service struct {
	pets PetRepository
}

func NewService(pets PetRepository) *Service {
	return &Service{pets: pets}
}

func (s *Service) CreatePet(ctx context.Context, req CreatePetRequest) (*domain.Pet, error) {
	p := &domain.Pet{
		UserID:    req.UserID,
		Name:      req.Name,
		Species:   req.Species,
		Color:     req.Color,
		Age:       req.Age,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pets.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListUserPets(ctx context.Context, userID int64) ([]domain.Pet, error) {
	return s.pets.ListByUser(ctx, userID)
}

func (s *Service) UpdatePet(ctx context.Context, id int64, req UpdatePetRequest) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Species != nil {
		p.Species = *req.Species
	}
	if req.Color != nil {
		p.Color = *req.Color
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.PhotoURL != nil {
		p.PhotoURL = *req.PhotoURL
	}

	if err := s.pets.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePet(ctx context.Context, id int64) error {
	return s.pets.Delete(ctx, id)
}
