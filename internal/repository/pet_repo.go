package repository

import (
	"context"
	"time"

	"petshop/internal/domain"

	"gorm.io/gorm"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

type petModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Name      string    `gorm:"column:name"`
	Species   string    `gorm:"column:species"`
	Color     string    `gorm:"column:color"`
	Age       string    `gorm:"column:age"`
	PhotoURL  string    `gorm:"column:photo_url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (petModel) TableName() string { return "pets" }

func toDomainPet(m petModel) *domain.Pet {
	return &domain.Pet{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Species:   m.Species,
		Color:     m.Color,
		Age:       m.Age,
		PhotoURL:  m.PhotoURL,
		CreatedAt: m.CreatedAt,
	}
}

func toPetModel(p *domain.Pet) petModel {
	return petModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Species:   p.Species,
		Color:     p.Color,
		Age:       p.Age,
		PhotoURL:  p.PhotoURL,
		CreatedAt: p.CreatedAt,
	}
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	m := toPetModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPet(m)
	return nil
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var m petModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainPet(m), nil
}

func (r *PetRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Pet, error) {
	var rows []petModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Pet, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPet(m))
	}
	return out, nil
}

func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	m := toPetModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PetRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&petModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
