package onboarding

import (
	"context"
	"fmt"
	"log"

	"github.com/Aradhyakapil/food-safe/internal/business"
	"github.com/Aradhyakapil/food-safe/internal/facility"
	"github.com/Aradhyakapil/food-safe/internal/storage"
	"github.com/Aradhyakapil/food-safe/internal/team"
)

type Service struct {
	businesses business.Repository
	members    team.Repository
	photos     facility.Repository
	storage    storage.Uploader
}

func NewService(
	businesses business.Repository,
	members team.Repository,
	photos facility.Repository,
	uploader storage.Uploader,
) *Service {
	return &Service{
		businesses: businesses,
		members:    members,
		photos:     photos,
		storage:    uploader,
	}
}

// Onboard runs the ingestion pipeline for one validated submission.
//
// The business insert is all-or-nothing: a failed logo or owner-photo
// upload aborts before any row is written. The team and facility stages are
// best-effort once the business row exists; a failed item is logged and
// dropped, never rolled back.
func (s *Service) Onboard(ctx context.Context, sub *Submission) (int, error) {
	logoURL, err := storage.UploadFileHeader(
		ctx,
		s.storage,
		storage.ObjectKey("businesses/logos", sub.Logo.Filename),
		sub.Logo,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upload business logo: %w", err)
	}

	ownerPhotoURL, err := storage.UploadFileHeader(
		ctx,
		s.storage,
		storage.ObjectKey("businesses/owners", sub.OwnerPhoto.Filename),
		sub.OwnerPhoto,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upload owner photo: %w", err)
	}

	b := &business.Business{
		Name:           sub.BusinessName,
		Address:        sub.Address,
		Phone:          business.NormalizePhone(sub.Phone),
		Email:          sub.Email,
		LicenseNumber:  sub.LicenseNumber,
		BusinessType:   sub.BusinessType,
		OwnerName:      sub.OwnerName,
		TradeLicense:   sub.TradeLicense,
		GSTNumber:      sub.GSTNumber,
		FireSafetyCert: sub.FireSafetyCert,
		LogoURL:        logoURL,
		OwnerPhotoURL:  ownerPhotoURL,
	}
	if sub.LiquorLicense != "" {
		b.LiquorLicense = &sub.LiquorLicense
	}
	if sub.MusicLicense != "" {
		b.MusicLicense = &sub.MusicLicense
	}

	if err := s.businesses.Create(ctx, b); err != nil {
		return 0, fmt.Errorf("failed to create business: %w", err)
	}

	// Dependent stages need the assigned ID; from here on failures are
	// per-item and the submission still succeeds.
	for i := range sub.TeamNames {
		photoURL, err := storage.UploadFileHeader(
			ctx,
			s.storage,
			storage.ObjectKey(fmt.Sprintf("businesses/%d/team", b.ID), sub.TeamPhotos[i].Filename),
			sub.TeamPhotos[i],
		)
		if err != nil {
			log.Printf("team member %d photo upload failed for business %d: %v", i, b.ID, err)
			continue
		}

		m := &team.Member{
			BusinessID: b.ID,
			Name:       sub.TeamNames[i],
			Role:       sub.TeamRoles[i],
			PhotoURL:   photoURL,
		}
		if err := s.members.Create(ctx, m); err != nil {
			log.Printf("team member %d insert failed for business %d: %v", i, b.ID, err)
		}
	}

	for i := range sub.FacilityAreas {
		photoURL, err := storage.UploadFileHeader(
			ctx,
			s.storage,
			storage.ObjectKey(fmt.Sprintf("businesses/%d/facility", b.ID), sub.FacilityPhotos[i].Filename),
			sub.FacilityPhotos[i],
		)
		if err != nil {
			log.Printf("facility photo %d upload failed for business %d: %v", i, b.ID, err)
			continue
		}

		p := &facility.Photo{
			BusinessID: b.ID,
			AreaName:   sub.FacilityAreas[i],
			PhotoURL:   photoURL,
		}
		if err := s.photos.Create(ctx, p); err != nil {
			log.Printf("facility photo %d insert failed for business %d: %v", i, b.ID, err)
		}
	}

	return b.ID, nil
}
