package facility

import "context"

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	ListByBusiness(ctx context.Context, businessID int) ([]*Photo, error)
}
