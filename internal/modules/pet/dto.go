package pet

type CreatePetRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Species  string `json:"species" binding:"required"`
	Color    string `json:"color"`
	Age      string `json:"age"`
	PhotoURL string `json:"photo_url"`
}

type UpdatePetRequest struct {
	Name     *string `json:"name"`
	Species  *string `json:"species"`
	Color    *string `json:"color"`
	Age      *string `json:"age"`
	PhotoURL *string `json:"photo_url"`
}
