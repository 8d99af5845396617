package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Username          string `gorm:"not null"`
	Email             string `gorm:"uniqueIndex;not null"`
	PasswordHash      string `gorm:"not null"`
	ExpectedBirthDate string
	BloodGroup        string
	Address           string
	Pincode           string
	ContactNumber     string

	// Relationships
	HealthRecords []DailyHealthRecord `gorm:"foreignKey:UserID"`
	Journals      []JournalEntry      `gorm:"foreignKey:UserID"`
	Appointments  []Appointment       `gorm:"foreignKey:UserID"`
	Meals         []Meal              `gorm:"foreignKey:UserID"`
}
