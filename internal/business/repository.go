package business

import "context"

// Repository defines the data-access contract.
// Service and the onboarding pipeline depend ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, b *Business) error
	GetByID(ctx context.Context, id int) (*Business, error)
	GetByLicense(ctx context.Context, licenseNumber string) (*Business, error)
	Update(ctx context.Context, id int, fields map[string]interface{}) (*Business, error)
}
