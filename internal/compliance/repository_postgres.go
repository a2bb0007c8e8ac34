package compliance

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

// --------------------------------------------------
// Certifications
// --------------------------------------------------
func (r *PostgresRepository) CreateCertification(ctx context.Context, cert *Certification) error {
	query := `
		INSERT INTO certifications (business_id, type, number, issue_date, expiry_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		cert.BusinessID,
		cert.Type,
		cert.Number,
		cert.IssueDate,
		cert.ExpiryDate,
		cert.Status,
	).Scan(&cert.ID, &cert.CreatedAt)
}

func (r *PostgresRepository) ListCertifications(ctx context.Context, businessID int) ([]*Certification, error) {
	query := `
		SELECT id, business_id, type, number, issue_date, expiry_date, status, created_at
		FROM certifications
		WHERE business_id = $1
		ORDER BY type ASC
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*Certification

	for rows.Next() {
		var c Certification
		if err := rows.Scan(
			&c.ID,
			&c.BusinessID,
			&c.Type,
			&c.Number,
			&c.IssueDate,
			&c.ExpiryDate,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		certs = append(certs, &c)
	}

	return certs, rows.Err()
}

// --------------------------------------------------
// Lab reports
// --------------------------------------------------
func (r *PostgresRepository) CreateLabReport(ctx context.Context, report *LabReport) error {
	query := `
		INSERT INTO lab_reports (business_id, report_date, test_type, result, notes, status, report_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		report.BusinessID,
		report.ReportDate,
		report.TestType,
		report.Result,
		report.Notes,
		report.Status,
		report.ReportURL,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *PostgresRepository) ListLabReports(ctx context.Context, businessID int) ([]*LabReport, error) {
	query := `
		SELECT id, business_id, report_date, test_type, result, notes, status, report_url, created_at
		FROM lab_reports
		WHERE business_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*LabReport

	for rows.Next() {
		var lr LabReport
		if err := rows.Scan(
			&lr.ID,
			&lr.BusinessID,
			&lr.ReportDate,
			&lr.TestType,
			&lr.Result,
			&lr.Notes,
			&lr.Status,
			&lr.ReportURL,
			&lr.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, &lr)
	}

	return reports, rows.Err()
}

// --------------------------------------------------
// Hygiene ratings (most recent inspection first)
// --------------------------------------------------
func (r *PostgresRepository) ListHygieneRatings(ctx context.Context, businessID int) ([]*HygieneRating, error) {
	query := `
		SELECT id, business_id, rating, inspection_date, inspector_name, notes, created_at
		FROM hygiene_ratings
		WHERE business_id = $1
		ORDER BY inspection_date DESC
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*HygieneRating

	for rows.Next() {
		var hr HygieneRating
		if err := rows.Scan(
			&hr.ID,
			&hr.BusinessID,
			&hr.Rating,
			&hr.InspectionDate,
			&hr.InspectorName,
			&hr.Notes,
			&hr.CreatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, &hr)
	}

	return ratings, rows.Err()
}

// --------------------------------------------------
// Reviews (most recent first)
// --------------------------------------------------
func (r *PostgresRepository) ListReviews(ctx context.Context, businessID int) ([]*Review, error) {
	query := `
		SELECT id, business_id, consumer_name, rating, comment, created_at
		FROM reviews
		WHERE business_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID,
			&rv.BusinessID,
			&rv.ConsumerName,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}

	return reviews, rows.Err()
}
