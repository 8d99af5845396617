package models

import "gorm.io/gorm"

// Appointment stores the caller-supplied "title" in DoctorName, matching
// the persisted column name; responses map it back to "title".
type Appointment struct {
	gorm.Model

	UserID     uint   `gorm:"not null;index"`
	DoctorName string `gorm:"not null"`
	Date       string `gorm:"not null"`
	Time       string `gorm:"not null"`
	Location   string `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}
