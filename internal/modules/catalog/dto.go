package catalog

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Stock       int64  `json:"stock"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateItemRequest uses pointers so a partial body only touches the fields
// it carries.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Price       *int64  `json:"price"`
	Stock       *int64  `json:"stock"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
