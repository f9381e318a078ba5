package db

import (
	"time"

	"gorm.io/gorm"
)

// AdminSession is a store-backed admin credential. Keeping sessions in the
// database means any replica can validate any token and a restart does not
// log the admin out. A session is valid strictly before ExpiresAt; expiry is
// fixed at creation and never slides.
type AdminSession struct {
	gorm.Model
	Token     string    `gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName returns the sessions collection name.
func (AdminSession) TableName() string {
	return "admin_sessions"
}
