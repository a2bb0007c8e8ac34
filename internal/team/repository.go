package team

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	ListByBusiness(ctx context.Context, businessID int) ([]*Member, error)
}
