package compliance

import (
	"context"
	"testing"
	"time"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestListHygieneRatings_MostRecentFirst(t *testing.T) {
	repo := NewInMemoryRepository()

	repo.AddHygieneRating(&HygieneRating{BusinessID: 1, Rating: 3, InspectionDate: date("2023-01-01")})
	repo.AddHygieneRating(&HygieneRating{BusinessID: 1, Rating: 5, InspectionDate: date("2024-06-01")})

	ratings, err := repo.ListHygieneRatings(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	if !ratings[0].InspectionDate.Equal(date("2024-06-01")) {
		t.Fatalf("expected 2024 inspection first, got %v", ratings[0].InspectionDate)
	}
}

func TestListCertifications_OrderedByType(t *testing.T) {
	repo := NewInMemoryRepository()

	for _, typ := range []string{"Trade License", "FSSAI", "Fire Safety"} {
		err := repo.CreateCertification(context.Background(), &Certification{
			BusinessID: 1,
			Type:       typ,
			Number:     "N-1",
			Status:     "Active",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	certs, err := repo.ListCertifications(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"FSSAI", "Fire Safety", "Trade License"}
	for i, typ := range want {
		if certs[i].Type != typ {
			t.Fatalf("expected %q at %d, got %q", typ, i, certs[i].Type)
		}
	}
}

func TestListLabReports_InsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()

	for _, tt := range []string{"Water Quality", "Surface Swab", "Oil Quality"} {
		err := repo.CreateLabReport(context.Background(), &LabReport{
			BusinessID: 1,
			ReportDate: date("2024-03-01"),
			TestType:   tt,
			Result:     "Within limits",
			Status:     "Pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	reports, err := repo.ListLabReports(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Water Quality", "Surface Swab", "Oil Quality"}
	for i, tt := range want {
		if reports[i].TestType != tt {
			t.Fatalf("expected %q at %d, got %q", tt, i, reports[i].TestType)
		}
	}
}

func TestListReviews_MostRecentFirst(t *testing.T) {
	repo := NewInMemoryRepository()

	old := "decent place"
	recent := "much improved"
	repo.AddReview(&Review{BusinessID: 1, Rating: 3, Comment: &old, CreatedAt: date("2023-05-01")})
	repo.AddReview(&Review{BusinessID: 1, Rating: 5, Comment: &recent, CreatedAt: date("2024-02-01")})

	reviews, err := repo.ListReviews(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if *reviews[0].Comment != recent {
		t.Fatalf("expected most recent review first, got %q", *reviews[0].Comment)
	}
}

func TestCollections_ScopedToBusiness(t *testing.T) {
	repo := NewInMemoryRepository()

	repo.AddHygieneRating(&HygieneRating{BusinessID: 1, Rating: 4, InspectionDate: date("2024-01-01")})
	repo.AddHygieneRating(&HygieneRating{BusinessID: 2, Rating: 2, InspectionDate: date("2024-01-02")})

	ratings, err := repo.ListHygieneRatings(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ratings) != 1 || ratings[0].BusinessID != 1 {
		t.Fatalf("expected only business 1 ratings, got %+v", ratings)
	}
}
