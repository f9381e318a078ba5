package db

import "time"

// ContactMessage stores a message submitted via the public contact form.
// The id is an application-generated UUID so create, list and delete all key
// on the same identifier. Messages are immutable once created.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null"`
	Subject   string    `gorm:"size:255"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName keeps the collection name the frontend was built against.
func (ContactMessage) TableName() string {
	return "contacts"
}
