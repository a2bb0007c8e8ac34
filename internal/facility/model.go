package facility

import "time"

// Photo documents one area of a business's premises.
type Photo struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	AreaName   string    `json:"area_name"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
}
