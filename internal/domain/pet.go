package domain

import "time"

type Pet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Color     string    `json:"color,omitempty"`
	Age       string    `json:"age,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
