package db

import "gorm.io/gorm"

// PersonalInfo is the singleton profile document shown on the public site.
// Exactly one logical row exists per deployment; writes replace it wholesale.
type PersonalInfo struct {
	gorm.Model
	Name         string   `gorm:"size:255"`
	Email        string   `gorm:"size:255"`
	Phone        string   `gorm:"size:50"`
	LinkedIn     string   `gorm:"size:255"`
	Description  string   `gorm:"type:text"`
	Skills       []string `gorm:"type:text;serializer:json"`
	ProfileImage string   `gorm:"type:text"`
}

// TableName returns the singleton collection name.
func (PersonalInfo) TableName() string {
	return "personal_info"
}
