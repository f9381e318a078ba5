package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

// ErrSectionInvalidInput is returned when a section write is missing its key.
var ErrSectionInvalidInput = errors.New("invalid section input")

// ContentService persists free-text portfolio sections keyed by name, with
// the same default-on-miss contract as stages: a never-written section
// answers with placeholder copy instead of a 404, and the placeholder is
// never stored.
type ContentService struct {
	db *gorm.DB
}

// NewContentService returns a new ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// SectionDocument is the wire shape of a content section. ContentHTML is
// filled on public reads with the sanitized rendering of Content.
type SectionDocument struct {
	Section     string     `json:"section"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHTML string     `json:"content_html,omitempty"`
	Goals       []string   `json:"goals"`
	Images      []string   `json:"images"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// SectionInput carries a full section document for an upsert.
type SectionInput struct {
	Title   string
	Content string
	Goals   []string
	Images  []string
}

// Get returns the stored section or its default placeholder.
func (s *ContentService) Get(section string) (*SectionDocument, error) {
	key := strings.TrimSpace(section)
	if key == "" {
		return nil, ErrSectionInvalidInput
	}

	var record db.ContentSection
	if err := s.db.Where("section = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultSectionDocument(key), nil
		}
		return nil, fmt.Errorf("get section %s: %w", key, err)
	}

	return sectionToDocument(&record), nil
}

// List returns every stored section, oldest first.
func (s *ContentService) List() ([]SectionDocument, error) {
	var records []db.ContentSection
	if err := s.db.Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	docs := make([]SectionDocument, 0, len(records))
	for i := range records {
		docs = append(docs, *sectionToDocument(&records[i]))
	}
	return docs, nil
}

// Upsert replaces the document stored under the section key. Only id and
// created_at survive from a previous version; updated_at is stamped by the
// store.
func (s *ContentService) Upsert(section string, input SectionInput) (*SectionDocument, error) {
	key := strings.TrimSpace(section)
	if key == "" {
		return nil, ErrSectionInvalidInput
	}

	var record db.ContentSection
	err := s.db.Where("section = ?", key).First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load section %s: %w", key, err)
	}

	record.Section = key
	record.Title = strings.TrimSpace(input.Title)
	record.Content = input.Content
	record.Goals = emptyIfNil(input.Goals)
	record.Images = emptyIfNil(input.Images)

	if err := s.db.Save(&record).Error; err != nil {
		return nil, fmt.Errorf("upsert section %s: %w", key, err)
	}

	return sectionToDocument(&record), nil
}

// Count returns the number of stored sections.
func (s *ContentService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.ContentSection{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return count, nil
}

func sectionToDocument(record *db.ContentSection) *SectionDocument {
	updatedAt := record.UpdatedAt
	return &SectionDocument{
		Section:   record.Section,
		Title:     record.Title,
		Content:   record.Content,
		Goals:     emptyIfNil(record.Goals),
		Images:    emptyIfNil(record.Images),
		UpdatedAt: &updatedAt,
	}
}

// defaultSectionDocument returns the placeholder served for a never-written
// section. Known sections carry localized placeholder copy, unknown keys the
// empty shape.
func defaultSectionDocument(section string) *SectionDocument {
	doc := &SectionDocument{
		Section: section,
		Goals:   []string{},
		Images:  []string{},
	}

	switch section {
	case "about":
		doc.Title = "À propos"
		doc.Content = "Cette section de présentation sera bientôt complétée."
	case "conclusion":
		doc.Title = "Conclusion"
		doc.Content = "Le bilan de ces expériences sera bientôt disponible."
		doc.Goals = []string{"Poursuivre la montée en compétences"}
	}

	return doc
}
