package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadedImage keeps an admin upload: the original filename, the detected
// mime type and the raw bytes. The API serves images back inline as data
// URIs, the row exists so uploads survive restarts and can be counted.
type UploadedImage struct {
	ID        string `gorm:"primaryKey;size:36"`
	Filename  string `gorm:"size:255;not null"`
	MimeType  string `gorm:"size:50;not null"`
	Size      int64
	Data      []byte `gorm:"type:blob"`
	CreatedAt time.Time
}

// TableName returns the images collection name.
func (UploadedImage) TableName() string {
	return "images"
}

// BeforeCreate assigns a UUID primary key when none was set.
func (img *UploadedImage) BeforeCreate(*gorm.DB) error {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	return nil
}
