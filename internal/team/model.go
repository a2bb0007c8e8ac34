package team

import "time"

// Member is owned by its business; it has no independent lifecycle.
type Member struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
}
