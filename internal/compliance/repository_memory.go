package compliance

import (
	"context"
	"sort"
	"time"
)

// InMemoryRepository mirrors the Postgres ordering contract so tests can
// assert on it.
type InMemoryRepository struct {
	certifications map[int][]*Certification
	labReports     map[int][]*LabReport
	hygieneRatings map[int][]*HygieneRating
	reviews        map[int][]*Review
	nextID         int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		certifications: make(map[int][]*Certification),
		labReports:     make(map[int][]*LabReport),
		hygieneRatings: make(map[int][]*HygieneRating),
		reviews:        make(map[int][]*Review),
		nextID:         1,
	}
}

func (r *InMemoryRepository) CreateCertification(ctx context.Context, cert *Certification) error {
	cert.ID = r.nextID
	r.nextID++
	cert.CreatedAt = time.Now()

	copied := *cert
	r.certifications[cert.BusinessID] = append(r.certifications[cert.BusinessID], &copied)
	return nil
}

func (r *InMemoryRepository) ListCertifications(ctx context.Context, businessID int) ([]*Certification, error) {
	certs := append([]*Certification(nil), r.certifications[businessID]...)
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[i].Type < certs[j].Type
	})
	return certs, nil
}

func (r *InMemoryRepository) CreateLabReport(ctx context.Context, report *LabReport) error {
	report.ID = r.nextID
	r.nextID++
	report.CreatedAt = time.Now()

	copied := *report
	r.labReports[report.BusinessID] = append(r.labReports[report.BusinessID], &copied)
	return nil
}

func (r *InMemoryRepository) ListLabReports(ctx context.Context, businessID int) ([]*LabReport, error) {
	return r.labReports[businessID], nil
}

// AddHygieneRating stands in for the external inspection process.
func (r *InMemoryRepository) AddHygieneRating(hr *HygieneRating) {
	hr.ID = r.nextID
	r.nextID++
	r.hygieneRatings[hr.BusinessID] = append(r.hygieneRatings[hr.BusinessID], hr)
}

func (r *InMemoryRepository) ListHygieneRatings(ctx context.Context, businessID int) ([]*HygieneRating, error) {
	ratings := append([]*HygieneRating(nil), r.hygieneRatings[businessID]...)
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].InspectionDate.After(ratings[j].InspectionDate)
	})
	return ratings, nil
}

// AddReview stands in for the consumer review flow.
func (r *InMemoryRepository) AddReview(rv *Review) {
	rv.ID = r.nextID
	r.nextID++
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	r.reviews[rv.BusinessID] = append(r.reviews[rv.BusinessID], rv)
}

func (r *InMemoryRepository) ListReviews(ctx context.Context, businessID int) ([]*Review, error) {
	reviews := append([]*Review(nil), r.reviews[businessID]...)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
