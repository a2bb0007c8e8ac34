package facility

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

func (r *PostgresRepository) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO facility_photos (business_id, area_name, photo_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		p.BusinessID,
		p.AreaName,
		p.PhotoURL,
	).Scan(&p.ID, &p.CreatedAt)
}

// ListByBusiness returns photos in insertion order.
func (r *PostgresRepository) ListByBusiness(ctx context.Context, businessID int) ([]*Photo, error) {
	query := `
		SELECT id, business_id, area_name, photo_url, created_at
		FROM facility_photos
		WHERE business_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*Photo

	for rows.Next() {
		var p Photo
		if err := rows.Scan(
			&p.ID,
			&p.BusinessID,
			&p.AreaName,
			&p.PhotoURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		photos = append(photos, &p)
	}

	return photos, rows.Err()
}
