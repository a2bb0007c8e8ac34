package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const businessColumns = `
	id,
	name,
	address,
	phone,
	email,
	license_number,
	business_type,
	owner_name,
	trade_license,
	gst_number,
	fire_safety_cert,
	liquor_license,
	music_license,
	logo_url,
	owner_photo_url,
	created_at
`

func scanBusiness(row pgx.Row) (*Business, error) {
	var b Business
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Address,
		&b.Phone,
		&b.Email,
		&b.LicenseNumber,
		&b.BusinessType,
		&b.OwnerName,
		&b.TradeLicense,
		&b.GSTNumber,
		&b.FireSafetyCert,
		&b.LiquorLicense,
		&b.MusicLicense,
		&b.LogoURL,
		&b.OwnerPhotoURL,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Create a new business
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, b *Business) error {
	query := `
		INSERT INTO businesses (
			name,
			address,
			phone,
			email,
			license_number,
			business_type,
			owner_name,
			trade_license,
			gst_number,
			fire_safety_cert,
			liquor_license,
			music_license,
			logo_url,
			owner_photo_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		b.Name,
		b.Address,
		b.Phone,
		b.Email,
		b.LicenseNumber,
		b.BusinessType,
		b.OwnerName,
		b.TradeLicense,
		b.GSTNumber,
		b.FireSafetyCert,
		b.LiquorLicense,
		b.MusicLicense,
		b.LogoURL,
		b.OwnerPhotoURL,
	).Scan(&b.ID, &b.CreatedAt)
}

// --------------------------------------------------
// Get business by ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	return b, err
}

// --------------------------------------------------
// Get business by license number (external lookup key)
// --------------------------------------------------
func (r *PostgresRepository) GetByLicense(ctx context.Context, licenseNumber string) (*Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE license_number = $1`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, licenseNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	return b, err
}

// --------------------------------------------------
// Partial update by ID
// --------------------------------------------------
func (r *PostgresRepository) Update(
	ctx context.Context,
	id int,
	fields map[string]interface{},
) (*Business, error) {

	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	i := 1
	for column, value := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE businesses SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "),
		i,
		businessColumns,
	)

	b, err := scanBusiness(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	return b, err
}
