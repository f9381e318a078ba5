package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrContactNotFound is returned when a delete matches no message.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactInvalidInput is returned when a submission is missing a
	// required field or the email address is malformed.
	ErrContactInvalidInput = errors.New("invalid contact input")
)

// contactSanitizer strips all markup from submitted text before storage.
var contactSanitizer = bluemonday.StrictPolicy()

// ContactService handles the public contact-form mailbox.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput describes a contact-form submission. Subject is optional.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Create validates and stores a contact message under a fresh UUID.
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, error) {
	name := contactSanitizer.Sanitize(strings.TrimSpace(input.Name))
	email := strings.TrimSpace(input.Email)
	subject := contactSanitizer.Sanitize(strings.TrimSpace(input.Subject))
	message := contactSanitizer.Sanitize(strings.TrimSpace(input.Message))

	if name == "" || message == "" || !isPlausibleEmail(email) {
		return nil, ErrContactInvalidInput
	}

	contact := db.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	return &contact, nil
}

// List returns every contact message, newest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var contacts []db.ContactMessage
	if err := s.db.Order("created_at DESC, id DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Delete removes exactly one message by id.
func (s *ContactService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.ContactMessage{})
	if result.Error != nil {
		return fmt.Errorf("delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Count returns the number of stored messages.
func (s *ContactService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

// isPlausibleEmail is a shape check, not RFC validation: something before and
// after a single separating @ with a dotted domain.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
