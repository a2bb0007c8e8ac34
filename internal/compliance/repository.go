package compliance

import "context"

// Repository covers the per-business compliance collections.
// Ordering is part of the contract: hygiene ratings and reviews come back
// most recent first, certifications by type, lab reports in insertion order.
type Repository interface {
	CreateCertification(ctx context.Context, cert *Certification) error
	ListCertifications(ctx context.Context, businessID int) ([]*Certification, error)

	CreateLabReport(ctx context.Context, report *LabReport) error
	ListLabReports(ctx context.Context, businessID int) ([]*LabReport, error)

	ListHygieneRatings(ctx context.Context, businessID int) ([]*HygieneRating, error)
	ListReviews(ctx context.Context, businessID int) ([]*Review, error)
}
