package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

// ErrPersonalInfoInvalidInput is returned when the profile write is missing
// required fields.
var ErrPersonalInfoInvalidInput = errors.New("invalid personal info input")

// PersonalInfoService maintains the singleton profile document. There is at
// most one row; writes replace it wholesale and reads fall back to a
// placeholder profile when nothing was written yet.
type PersonalInfoService struct {
	db *gorm.DB
}

// NewPersonalInfoService returns a new PersonalInfoService instance.
func NewPersonalInfoService(gdb *gorm.DB) *PersonalInfoService {
	return &PersonalInfoService{db: gdb}
}

// PersonalInfoDocument is the wire shape of the profile.
type PersonalInfoDocument struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	LinkedIn     string     `json:"linkedin"`
	Description  string     `json:"description"`
	Skills       []string   `json:"skills"`
	ProfileImage string     `json:"profile_image"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PersonalInfoInput carries a full profile document for an upsert.
type PersonalInfoInput struct {
	Name         string
	Email        string
	Phone        string
	LinkedIn     string
	Description  string
	Skills       []string
	ProfileImage string
}

// Get returns the stored profile, or the placeholder profile when none
// exists. The placeholder is never persisted.
func (s *PersonalInfoService) Get() (*PersonalInfoDocument, error) {
	var info db.PersonalInfo
	if err := s.db.Order("id ASC").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultPersonalInfoDocument(), nil
		}
		return nil, fmt.Errorf("get personal info: %w", err)
	}

	return personalInfoToDocument(&info), nil
}

// Upsert replaces the singleton profile document. Name and email are
// required; everything else is optional.
func (s *PersonalInfoService) Upsert(input PersonalInfoInput) (*PersonalInfoDocument, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, ErrPersonalInfoInvalidInput
	}

	var info db.PersonalInfo
	err := s.db.Order("id ASC").First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load personal info: %w", err)
	}

	info.Name = name
	info.Email = email
	info.Phone = strings.TrimSpace(input.Phone)
	info.LinkedIn = strings.TrimSpace(input.LinkedIn)
	info.Description = input.Description
	info.Skills = emptyIfNil(input.Skills)
	info.ProfileImage = input.ProfileImage

	if err := s.db.Save(&info).Error; err != nil {
		return nil, fmt.Errorf("upsert personal info: %w", err)
	}

	return personalInfoToDocument(&info), nil
}

func personalInfoToDocument(info *db.PersonalInfo) *PersonalInfoDocument {
	updatedAt := info.UpdatedAt
	return &PersonalInfoDocument{
		Name:         info.Name,
		Email:        info.Email,
		Phone:        info.Phone,
		LinkedIn:     info.LinkedIn,
		Description:  info.Description,
		Skills:       emptyIfNil(info.Skills),
		ProfileImage: info.ProfileImage,
		UpdatedAt:    &updatedAt,
	}
}

func defaultPersonalInfoDocument() *PersonalInfoDocument {
	return &PersonalInfoDocument{
		Description: "Le profil sera bientôt complété.",
		Skills:      []string{},
	}
}
