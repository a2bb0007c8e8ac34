package business

import (
	"context"
	"errors"
	"strings"

	"github.com/Aradhyakapil/food-safe/internal/auth"
)

var (
	// ErrBusinessNotFound means no business matches the supplied license number.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrCredentialMismatch means the license matched but the phone did not.
	ErrCredentialMismatch = errors.New("phone number does not match license record")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Login with the (phone, license) credential pair
// --------------------------------------------------
// The two failure modes stay distinct: an unknown license is
// ErrBusinessNotFound, a wrong phone is ErrCredentialMismatch.
func (s *Service) Login(
	ctx context.Context,
	phoneNumber string,
	licenseNumber string,
) (string, *Business, error) {

	b, err := s.repo.GetByLicense(ctx, strings.TrimSpace(licenseNumber))
	if err != nil {
		return "", nil, err
	}

	if NormalizePhone(phoneNumber) != b.Phone {
		return "", nil, ErrCredentialMismatch
	}

	token, err := auth.GenerateBusinessToken(b.ID, b.LicenseNumber)
	if err != nil {
		return "", nil, err
	}

	return token, b, nil
}

// --------------------------------------------------
// Get business by ID
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id int) (*Business, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Lookup by license number (consumer verification)
// --------------------------------------------------
func (s *Service) GetByLicense(ctx context.Context, licenseNumber string) (*Business, error) {
	return s.repo.GetByLicense(ctx, strings.TrimSpace(licenseNumber))
}

// UpdateRequest carries the optional fields of a partial business update.
type UpdateRequest struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	BusinessType   *string `json:"business_type"`
	OwnerName      *string `json:"owner_name"`
	TradeLicense   *string `json:"trade_license"`
	GSTNumber      *string `json:"gst_number"`
	FireSafetyCert *string `json:"fire_safety_cert"`
	LiquorLicense  *string `json:"liquor_license"`
	MusicLicense   *string `json:"music_license"`
	LogoURL        *string `json:"logo_url"`
	OwnerPhotoURL  *string `json:"owner_photo_url"`
}

// --------------------------------------------------
// Partial update by ID
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id int, req *UpdateRequest) (*Business, error) {
	fields := make(map[string]interface{})

	set := func(column string, value *string) {
		if value != nil {
			fields[column] = strings.TrimSpace(*value)
		}
	}

	set("name", req.Name)
	set("address", req.Address)
	set("email", req.Email)
	set("business_type", req.BusinessType)
	set("owner_name", req.OwnerName)
	set("trade_license", req.TradeLicense)
	set("gst_number", req.GSTNumber)
	set("fire_safety_cert", req.FireSafetyCert)
	set("liquor_license", req.LiquorLicense)
	set("music_license", req.MusicLicense)
	set("logo_url", req.LogoURL)
	set("owner_photo_url", req.OwnerPhotoURL)

	// Phone is stored normalized so login comparison stays byte-for-byte.
	if req.Phone != nil {
		fields["phone"] = NormalizePhone(*req.Phone)
	}

	return s.repo.Update(ctx, id, fields)
}
