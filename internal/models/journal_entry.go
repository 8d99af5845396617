package models

import "gorm.io/gorm"

type JournalEntry struct {
	gorm.Model

	UserID   uint   `gorm:"not null;index"`
	Title    string `gorm:"not null"`
	Mood     string `gorm:"not null"`
	Thoughts string `gorm:"not null"`
	Date     string `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}
