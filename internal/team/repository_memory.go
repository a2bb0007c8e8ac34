package team

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	members map[int][]*Member
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		members: make(map[int][]*Member),
		nextID:  1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, m *Member) error {
	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now()

	copied := *m
	r.members[m.BusinessID] = append(r.members[m.BusinessID], &copied)
	return nil
}

func (r *InMemoryRepository) ListByBusiness(ctx context.Context, businessID int) ([]*Member, error) {
	return r.members[businessID], nil
}
