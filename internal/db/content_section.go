package db

import "gorm.io/gorm"

// ContentSection is a free-text portfolio section (about, conclusion...),
// keyed by its section name.
type ContentSection struct {
	gorm.Model
	Section string   `gorm:"size:100;uniqueIndex;not null"`
	Title   string   `gorm:"size:255"`
	Content string   `gorm:"type:text"`
	Goals   []string `gorm:"type:text;serializer:json"`
	Images  []string `gorm:"type:text;serializer:json"`
}

// TableName returns the content collection name.
func (ContentSection) TableName() string {
	return "content"
}
