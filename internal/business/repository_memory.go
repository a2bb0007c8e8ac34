package business

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	businesses map[int]*Business
	nextID     int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		businesses: make(map[int]*Business),
		nextID:     1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, b *Business) error {
	b.ID = r.nextID
	r.nextID++
	b.CreatedAt = time.Now()

	copied := *b
	r.businesses[b.ID] = &copied
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, ErrBusinessNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *InMemoryRepository) GetByLicense(ctx context.Context, licenseNumber string) (*Business, error) {
	for _, b := range r.businesses {
		if b.LicenseNumber == licenseNumber {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBusinessNotFound
}

func (r *InMemoryRepository) Update(
	ctx context.Context,
	id int,
	fields map[string]interface{},
) (*Business, error) {

	b, ok := r.businesses[id]
	if !ok {
		return nil, ErrBusinessNotFound
	}

	for column, value := range fields {
		s, _ := value.(string)
		switch column {
		case "name":
			b.Name = s
		case "address":
			b.Address = s
		case "phone":
			b.Phone = s
		case "email":
			b.Email = s
		case "business_type":
			b.BusinessType = s
		case "owner_name":
			b.OwnerName = s
		case "trade_license":
			b.TradeLicense = s
		case "gst_number":
			b.GSTNumber = s
		case "fire_safety_cert":
			b.FireSafetyCert = s
		case "liquor_license":
			b.LiquorLicense = &s
		case "music_license":
			b.MusicLicense = &s
		case "logo_url":
			b.LogoURL = s
		case "owner_photo_url":
			b.OwnerPhotoURL = s
		}
	}

	copied := *b
	return &copied, nil
}
