package facility

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	photos map[int][]*Photo
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		photos: make(map[int][]*Photo),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Photo) error {
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()

	copied := *p
	r.photos[p.BusinessID] = append(r.photos[p.BusinessID], &copied)
	return nil
}

func (r *InMemoryRepository) ListByBusiness(ctx context.Context, businessID int) ([]*Photo, error) {
	return r.photos[businessID], nil
}
