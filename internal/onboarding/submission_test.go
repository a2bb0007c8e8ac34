package onboarding

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

type fileSpec struct {
	filename    string
	contentType string
	data        string
}

func validFields() map[string]string {
	return map[string]string{
		"business_name":    "Annapurna Tiffins",
		"address":          "12 MG Road, Pune",
		"phone":            "+91 99309 16956",
		"email":            "owner@annapurna.in",
		"license_number":   "FSSAI-2024-00042",
		"business_type":    "Restaurant",
		"owner_name":       "S. Rao",
		"trade_license":    "TL-8891",
		"gst_number":       "27AAACA1234A1Z5",
		"fire_safety_cert": "FS-3321",
	}
}

func requiredFiles() map[string][]fileSpec {
	return map[string][]fileSpec{
		"business_logo": {{filename: "logo.png", contentType: "image/png", data: "png-bytes"}},
		"owner_photo":   {{filename: "owner.jpg", contentType: "image/jpeg", data: "jpg-bytes"}},
	}
}

// buildForm assembles and re-parses a real multipart body so the tests
// exercise the same *multipart.Form the handler receives.
func buildForm(t *testing.T, fields map[string]string, files map[string][]fileSpec) *multipart.Form {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for field, specs := range files {
		for _, f := range specs {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, f.filename))
			h.Set("Content-Type", f.contentType)
			pw, err := w.CreatePart(h)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := pw.Write([]byte(f.data)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest("POST", "/business/onboard", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return req.MultipartForm
}

func TestParseSubmission_Valid(t *testing.T) {
	form := buildForm(t, validFields(), requiredFiles())

	sub, err := ParseSubmission(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.BusinessName != "Annapurna Tiffins" {
		t.Errorf("unexpected business name %q", sub.BusinessName)
	}
	if sub.Logo == nil || sub.OwnerPhoto == nil {
		t.Error("expected both required files")
	}
	if len(sub.TeamNames) != 0 || len(sub.FacilityAreas) != 0 {
		t.Error("expected empty batches when batch fields are absent")
	}
}

func TestParseSubmission_MissingRequiredScalar(t *testing.T) {
	fields := validFields()
	delete(fields, "gst_number")
	form := buildForm(t, fields, requiredFiles())

	_, err := ParseSubmission(form)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "gst_number" {
		t.Errorf("expected error to name gst_number, got %q", vErr.Field)
	}
}

func TestParseSubmission_BlankScalarRejected(t *testing.T) {
	fields := validFields()
	fields["owner_name"] = "   "
	form := buildForm(t, fields, requiredFiles())

	var vErr *ValidationError
	if _, err := ParseSubmission(form); !errors.As(err, &vErr) || vErr.Field != "owner_name" {
		t.Fatalf("expected ValidationError naming owner_name, got %v", err)
	}
}

func TestParseSubmission_MissingLogo(t *testing.T) {
	files := requiredFiles()
	delete(files, "business_logo")
	form := buildForm(t, validFields(), files)

	var vErr *ValidationError
	if _, err := ParseSubmission(form); !errors.As(err, &vErr) || vErr.Field != "business_logo" {
		t.Fatalf("expected ValidationError naming business_logo, got %v", err)
	}
}

func TestParseSubmission_NonImageOwnerPhoto(t *testing.T) {
	files := requiredFiles()
	files["owner_photo"] = []fileSpec{{filename: "owner.pdf", contentType: "application/pdf", data: "pdf"}}
	form := buildForm(t, validFields(), files)

	var vErr *ValidationError
	if _, err := ParseSubmission(form); !errors.As(err, &vErr) || vErr.Field != "owner_photo" {
		t.Fatalf("expected ValidationError naming owner_photo, got %v", err)
	}
}

func TestParseSubmission_TeamBatchAligned(t *testing.T) {
	fields := validFields()
	fields["team_member_names"] = "Ravi Kumar, Meena Patil"
	fields["team_member_roles"] = "Head Chef, Manager"

	files := requiredFiles()
	files["team_member_photos"] = []fileSpec{
		{filename: "ravi.jpg", contentType: "image/jpeg", data: "a"},
		{filename: "meena.jpg", contentType: "image/jpeg", data: "b"},
	}

	sub, err := ParseSubmission(buildForm(t, fields, files))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.TeamNames) != 2 || len(sub.TeamRoles) != 2 || len(sub.TeamPhotos) != 2 {
		t.Fatalf("expected aligned batch of 2, got %d/%d/%d",
			len(sub.TeamNames), len(sub.TeamRoles), len(sub.TeamPhotos))
	}
	if sub.TeamNames[1] != "Meena Patil" || sub.TeamRoles[0] != "Head Chef" {
		t.Errorf("batch elements not trimmed: %v %v", sub.TeamNames, sub.TeamRoles)
	}
}

func TestParseSubmission_TeamBatchMismatchDisablesStage(t *testing.T) {
	fields := validFields()
	fields["team_member_names"] = "Ravi Kumar, Meena Patil"
	fields["team_member_roles"] = "Head Chef"

	files := requiredFiles()
	files["team_member_photos"] = []fileSpec{
		{filename: "ravi.jpg", contentType: "image/jpeg", data: "a"},
		{filename: "meena.jpg", contentType: "image/jpeg", data: "b"},
	}

	sub, err := ParseSubmission(buildForm(t, fields, files))
	if err != nil {
		t.Fatalf("mismatch must not reject the submission: %v", err)
	}

	if len(sub.TeamNames) != 0 {
		t.Fatalf("expected team stage disabled, got %d names", len(sub.TeamNames))
	}
}

func TestParseSubmission_TeamBatchMissingPhotosDisablesStage(t *testing.T) {
	fields := validFields()
	fields["team_member_names"] = "Ravi Kumar"
	fields["team_member_roles"] = "Head Chef"

	sub, err := ParseSubmission(buildForm(t, fields, requiredFiles()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.TeamNames) != 0 {
		t.Fatal("expected team stage disabled when photos are absent")
	}
}

func TestParseSubmission_FacilityBatchAligned(t *testing.T) {
	fields := validFields()
	fields["facility_photo_area_names"] = "Kitchen, Dining Area"

	files := requiredFiles()
	files["facility_photos"] = []fileSpec{
		{filename: "kitchen.jpg", contentType: "image/jpeg", data: "a"},
		{filename: "dining.jpg", contentType: "image/jpeg", data: "b"},
	}

	sub, err := ParseSubmission(buildForm(t, fields, files))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.FacilityAreas) != 2 || len(sub.FacilityPhotos) != 2 {
		t.Fatalf("expected aligned batch of 2, got %d/%d",
			len(sub.FacilityAreas), len(sub.FacilityPhotos))
	}
	if sub.FacilityAreas[1] != "Dining Area" {
		t.Errorf("area names not trimmed: %v", sub.FacilityAreas)
	}
}

func TestParseSubmission_FacilityMismatchDisablesStage(t *testing.T) {
	fields := validFields()
	fields["facility_photo_area_names"] = "Kitchen, Dining Area, Storage"

	files := requiredFiles()
	files["facility_photos"] = []fileSpec{
		{filename: "kitchen.jpg", contentType: "image/jpeg", data: "a"},
	}

	sub, err := ParseSubmission(buildForm(t, fields, files))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.FacilityAreas) != 0 {
		t.Fatal("expected facility stage disabled on mismatch")
	}
}
