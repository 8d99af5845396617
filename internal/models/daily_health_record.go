package models

import "gorm.io/gorm"

// DailyHealthRecord holds one submission of daily metrics. Multiple
// records per (user, date) are allowed.
type DailyHealthRecord struct {
	gorm.Model

	UserID         uint    `gorm:"not null;index"`
	Date           string  `gorm:"not null"`
	HeartRate      int     `gorm:"not null;default:0"`
	PulseRate      int     `gorm:"not null;default:0"`
	BloodPressure  string  `gorm:"not null;default:'0/0'"` // "sys/dia"
	Footsteps      int     `gorm:"not null;default:0"`
	MeditationTime int     `gorm:"not null;default:0"`
	Temperature    float64 `gorm:"not null;default:0"`
	SleepDuration  int     `gorm:"not null;default:0"`
	WaterIntake    int     `gorm:"not null;default:0"`
	CalorieIntake  int     `gorm:"not null;default:0"`
	WorkoutCount   int     `gorm:"not null;default:0"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}
