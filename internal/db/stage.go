package db

import "gorm.io/gorm"

// Mission is one entry of a stage's mission list. The shape varies per entry:
// some missions carry skills, others bullet points, so the struct is the
// optional-field superset and entries round-trip with only the fields they
// were written with.
type Mission struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Points      []string `json:"points,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Stage is an internship record, keyed by its stage type (stage1, stage2...).
type Stage struct {
	gorm.Model
	StageType    string    `gorm:"size:50;uniqueIndex;not null"`
	Company      string    `gorm:"size:255"`
	Position     string    `gorm:"size:255"`
	Period       string    `gorm:"size:255"`
	Sector       string    `gorm:"size:255"`
	Description  string    `gorm:"type:text"`
	Tools        []string  `gorm:"type:text;serializer:json"`
	Missions     []Mission `gorm:"type:text;serializer:json"`
	Skills       []string  `gorm:"type:text;serializer:json"`
	Achievements []string  `gorm:"type:text;serializer:json"`
	Images       []string  `gorm:"type:text;serializer:json"`
	Learnings    string    `gorm:"type:text"`
}

// TableName returns the stages collection name.
func (Stage) TableName() string {
	return "stages"
}
