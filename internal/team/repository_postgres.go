package team

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO team_members (business_id, name, role, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		m.BusinessID,
		m.Name,
		m.Role,
		m.PhotoURL,
	).Scan(&m.ID, &m.CreatedAt)
}

// ListByBusiness returns members in insertion order.
func (r *PostgresRepository) ListByBusiness(ctx context.Context, businessID int) ([]*Member, error) {
	query := `
		SELECT id, business_id, name, role, photo_url, created_at
		FROM team_members
		WHERE business_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*Member

	for rows.Next() {
		var m Member
		if err := rows.Scan(
			&m.ID,
			&m.BusinessID,
			&m.Name,
			&m.Role,
			&m.PhotoURL,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	return members, rows.Err()
}
