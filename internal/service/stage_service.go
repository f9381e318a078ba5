package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stagefolio/internal/db"
	"gorm.io/gorm"
)

// ErrStageInvalidInput is returned when a stage write is missing its type.
var ErrStageInvalidInput = errors.New("invalid stage input")

// StageService persists internship records keyed by stage type. Reads never
// miss: an absent type yields that type's canonical placeholder document so
// the public site renders before the admin has written anything. Placeholders
// are never persisted.
type StageService struct {
	db *gorm.DB
}

// NewStageService returns a new StageService instance.
func NewStageService(gdb *gorm.DB) *StageService {
	return &StageService{db: gdb}
}

// StageDocument is the wire shape of a stage record, free of store internals.
type StageDocument struct {
	StageType    string       `json:"stage_type"`
	Company      string       `json:"company"`
	Position     string       `json:"position"`
	Period       string       `json:"period"`
	Sector       string       `json:"sector"`
	Description  string       `json:"description"`
	Tools        []string     `json:"tools"`
	Missions     []db.Mission `json:"missions"`
	Skills       []string     `json:"skills"`
	Achievements []string     `json:"achievements"`
	Images       []string     `json:"images"`
	Learnings    string       `json:"learnings"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

// StageInput carries a full stage document for an upsert. Writes replace the
// whole document for the type; only id and created_at survive from a previous
// version, and updated_at is stamped by the store.
type StageInput struct {
	Company      string
	Position     string
	Period       string
	Sector       string
	Description  string
	Tools        []string
	Missions     []db.Mission
	Skills       []string
	Achievements []string
	Images       []string
	Learnings    string
}

// Get returns the stored stage for the type, or its default placeholder.
func (s *StageService) Get(stageType string) (*StageDocument, error) {
	key := strings.TrimSpace(stageType)
	if key == "" {
		return nil, ErrStageInvalidInput
	}

	var stage db.Stage
	if err := s.db.Where("stage_type = ?", key).First(&stage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultStageDocument(key), nil
		}
		return nil, fmt.Errorf("get stage %s: %w", key, err)
	}

	return stageToDocument(&stage), nil
}

// List returns every stored stage record, oldest first.
func (s *StageService) List() ([]StageDocument, error) {
	var stages []db.Stage
	if err := s.db.Order("created_at ASC, id ASC").Find(&stages).Error; err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}

	docs := make([]StageDocument, 0, len(stages))
	for i := range stages {
		docs = append(docs, *stageToDocument(&stages[i]))
	}
	return docs, nil
}

// Upsert replaces the stage document stored under the type.
func (s *StageService) Upsert(stageType string, input StageInput) (*StageDocument, error) {
	key := strings.TrimSpace(stageType)
	if key == "" {
		return nil, ErrStageInvalidInput
	}

	var stage db.Stage
	err := s.db.Where("stage_type = ?", key).First(&stage).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load stage %s: %w", key, err)
	}

	stage.StageType = key
	stage.Company = strings.TrimSpace(input.Company)
	stage.Position = strings.TrimSpace(input.Position)
	stage.Period = strings.TrimSpace(input.Period)
	stage.Sector = strings.TrimSpace(input.Sector)
	stage.Description = input.Description
	stage.Tools = emptyIfNil(input.Tools)
	stage.Missions = emptyMissionsIfNil(input.Missions)
	stage.Skills = emptyIfNil(input.Skills)
	stage.Achievements = emptyIfNil(input.Achievements)
	stage.Images = emptyIfNil(input.Images)
	stage.Learnings = input.Learnings

	if err := s.db.Save(&stage).Error; err != nil {
		return nil, fmt.Errorf("upsert stage %s: %w", key, err)
	}

	return stageToDocument(&stage), nil
}

// Count returns the number of stored stage records.
func (s *StageService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Stage{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count stages: %w", err)
	}
	return count, nil
}

func stageToDocument(stage *db.Stage) *StageDocument {
	updatedAt := stage.UpdatedAt
	return &StageDocument{
		StageType:    stage.StageType,
		Company:      stage.Company,
		Position:     stage.Position,
		Period:       stage.Period,
		Sector:       stage.Sector,
		Description:  stage.Description,
		Tools:        emptyIfNil(stage.Tools),
		Missions:     emptyMissionsIfNil(stage.Missions),
		Skills:       emptyIfNil(stage.Skills),
		Achievements: emptyIfNil(stage.Achievements),
		Images:       emptyIfNil(stage.Images),
		Learnings:    stage.Learnings,
		UpdatedAt:    &updatedAt,
	}
}

// defaultStageDocument returns the placeholder served for a never-written
// type. The two known stage slots carry localized placeholder copy; other
// types get the empty shape.
func defaultStageDocument(stageType string) *StageDocument {
	doc := &StageDocument{
		StageType:    stageType,
		Tools:        []string{},
		Missions:     []db.Mission{},
		Skills:       []string{},
		Achievements: []string{},
		Images:       []string{},
	}

	switch stageType {
	case "stage1":
		doc.Company = "Entreprise à renseigner"
		doc.Position = "Stagiaire développement"
		doc.Period = "Période à renseigner"
		doc.Sector = "Secteur à renseigner"
		doc.Description = "La présentation de ce stage sera bientôt disponible."
		doc.Missions = []db.Mission{{
			Title:       "Missions à venir",
			Description: "Les missions de ce stage seront détaillées prochainement.",
		}}
	case "stage2":
		doc.Company = "Entreprise à renseigner"
		doc.Position = "Stagiaire développement"
		doc.Period = "Période à renseigner"
		doc.Sector = "Secteur à renseigner"
		doc.Description = "La présentation de ce second stage sera bientôt disponible."
		doc.Missions = []db.Mission{{
			Title:       "Missions à venir",
			Description: "Les missions de ce stage seront détaillées prochainement.",
		}}
	}

	return doc
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func emptyMissionsIfNil(missions []db.Mission) []db.Mission {
	if missions == nil {
		return []db.Mission{}
	}
	return missions
}
