package repository

import (
	"context"
	"errors"
	"time"

	"petshop/internal/domain"

	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

type cartLineModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	ItemID    int64     `gorm:"column:item_id"`
	Quantity  int64     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (cartLineModel) TableName() string { return "carts" }

// CartLineDetail is a cart row joined with its catalog item for display.
type CartLineDetail struct {
	ItemID    int64  `gorm:"column:item_id" json:"item_id"`
	ItemName  string `gorm:"column:name" json:"item_name"`
	UnitPrice int64  `gorm:"column:price" json:"unit_price"`
	ImageURL  string `gorm:"column:image_url" json:"image_url,omitempty"`
	Quantity  int64  `gorm:"column:quantity" json:"quantity"`
}

// AddLine upserts on (user, item): an existing line gets its quantity bumped.
func (r *CartRepository) AddLine(ctx context.Context, userID, itemID, quantity int64) (*domain.CartLine, error) {
	var m cartLineModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&m).Error
	switch {
	case err == nil:
		m.Quantity += quantity
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = cartLineModel{UserID: userID, ItemID: itemID, Quantity: quantity}
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &domain.CartLine{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]CartLineDetail, error) {
	var rows []CartLineDetail
	err := r.db.WithContext(ctx).
		Table("carts").
		Select("carts.item_id, items.name, items.price, items.image_url, carts.quantity").
		Joins("JOIN items ON items.id = carts.item_id").
		Where("carts.user_id = ?", userID).
		Order("carts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CartRepository) RemoveLine(ctx context.Context, userID, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&cartLineModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
