package repository

import (
	"context"
	"errors"
	"time"

	"petshop/internal/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) DB() *gorm.DB { return r.db }

type itemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category"`
	Price       int64     `gorm:"column:price"`
	Stock       int64     `gorm:"column:stock;check:stock >= 0"`
	Description string    `gorm:"column:description"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (itemModel) TableName() string { return "items" }

func toDomainItem(m itemModel) *domain.Item {
	return &domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Category:    domain.ItemCategory(m.Category),
		Price:       m.Price,
		Stock:       m.Stock,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

func toItemModel(it *domain.Item) itemModel {
	return itemModel{
		ID:          it.ID,
		Name:        it.Name,
		Category:    string(it.Category),
		Price:       it.Price,
		Stock:       it.Stock,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		CreatedAt:   it.CreatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *domain.Item) error {
	m := toItemModel(it)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*it = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.ItemNotFoundError{ItemID: id}
		}
		return nil, err
	}
	return toDomainItem(m), nil
}

// GetByName resolves a service booking's catalog entry. gorm.ErrRecordNotFound
// passes through so callers can apply the default-price fallback.
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainItem(m), nil
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *domain.Item) error {
	m := toItemModel(it)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&itemModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
