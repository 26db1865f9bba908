package domain

import "time"

type ItemCategory string

const (
	CategoryFood      ItemCategory = "food"
	CategoryAccessory ItemCategory = "accessory"
	CategoryService   ItemCategory = "service"
)

// Item is a catalog row: a physical good with tracked stock, or a service
// (grooming, hotel) that is never inventoried. Price is in the smallest
// currency unit.
type Item struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Price       int64        `json:"price"`
	Stock       int64        `json:"stock"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
