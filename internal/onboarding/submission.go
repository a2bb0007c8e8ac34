package onboarding

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// Submission is one decomposed onboarding form: the business scalars, the
// two required images, and the positionally-aligned team and facility
// batches. A batch that was absent or misaligned in the form is left empty
// and its pipeline stage is skipped.
type Submission struct {
	BusinessName   string
	Address        string
	Phone          string
	Email          string
	LicenseNumber  string
	BusinessType   string
	OwnerName      string
	TradeLicense   string
	GSTNumber      string
	FireSafetyCert string
	LiquorLicense  string
	MusicLicense   string

	Logo       *multipart.FileHeader
	OwnerPhoto *multipart.FileHeader

	TeamNames  []string
	TeamRoles  []string
	TeamPhotos []*multipart.FileHeader

	FacilityAreas  []string
	FacilityPhotos []*multipart.FileHeader
}

var requiredFields = []string{
	"business_name",
	"address",
	"phone",
	"email",
	"license_number",
	"business_type",
	"owner_name",
	"trade_license",
	"gst_number",
	"fire_safety_cert",
}

// ValidationError names the form field that failed; handlers surface it
// verbatim with a 422. No store or storage mutation ever precedes it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	files := form.File[key]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func isImage(f *multipart.FileHeader) bool {
	return f.Size > 0 && strings.HasPrefix(f.Header.Get("Content-Type"), "image/")
}

// splitBatch comma-splits a delimited field and trims each element.
func splitBatch(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseSubmission validates and decomposes the raw multipart form.
// Required scalars and the two required images fail fast; a batch whose
// inputs are partially missing or misaligned disables that stage only.
func ParseSubmission(form *multipart.Form) (*Submission, error) {
	for _, field := range requiredFields {
		if formValue(form, field) == "" {
			return nil, &ValidationError{Field: field, Message: "required field is missing or blank"}
		}
	}

	logo := formFile(form, "business_logo")
	if logo == nil || !isImage(logo) {
		return nil, &ValidationError{Field: "business_logo", Message: "a business logo image is required"}
	}

	ownerPhoto := formFile(form, "owner_photo")
	if ownerPhoto == nil || !isImage(ownerPhoto) {
		return nil, &ValidationError{Field: "owner_photo", Message: "an owner photo image is required"}
	}

	sub := &Submission{
		BusinessName:   formValue(form, "business_name"),
		Address:        formValue(form, "address"),
		Phone:          formValue(form, "phone"),
		Email:          formValue(form, "email"),
		LicenseNumber:  formValue(form, "license_number"),
		BusinessType:   formValue(form, "business_type"),
		OwnerName:      formValue(form, "owner_name"),
		TradeLicense:   formValue(form, "trade_license"),
		GSTNumber:      formValue(form, "gst_number"),
		FireSafetyCert: formValue(form, "fire_safety_cert"),
		LiquorLicense:  formValue(form, "liquor_license"),
		MusicLicense:   formValue(form, "music_license"),
		Logo:           logo,
		OwnerPhoto:     ownerPhoto,
	}

	names := splitBatch(formValue(form, "team_member_names"))
	roles := splitBatch(formValue(form, "team_member_roles"))
	teamPhotos := form.File["team_member_photos"]

	if len(names) > 0 && len(names) == len(roles) && len(names) == len(teamPhotos) {
		sub.TeamNames = names
		sub.TeamRoles = roles
		sub.TeamPhotos = teamPhotos
	}

	areas := splitBatch(formValue(form, "facility_photo_area_names"))
	facilityPhotos := form.File["facility_photos"]

	if len(areas) > 0 && len(areas) == len(facilityPhotos) {
		sub.FacilityAreas = areas
		sub.FacilityPhotos = facilityPhotos
	}

	return sub, nil
}
