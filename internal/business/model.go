package business

import "time"

// Business is the root entity of the domain: one registered food
// establishment, looked up externally by its license number.
type Business struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	LicenseNumber  string    `json:"license_number"`
	BusinessType   string    `json:"business_type"`
	OwnerName      string    `json:"owner_name"`
	TradeLicense   string    `json:"trade_license"`
	GSTNumber      string    `json:"gst_number"`
	FireSafetyCert string    `json:"fire_safety_cert"`
	LiquorLicense  *string   `json:"liquor_license,omitempty"`
	MusicLicense   *string   `json:"music_license,omitempty"`
	LogoURL        string    `json:"logo_url"`
	OwnerPhotoURL  string    `json:"owner_photo_url"`
	CreatedAt      time.Time `json:"created_at"`
}
