package models

import "gorm.io/gorm"

type Meal struct {
	gorm.Model

	UserID   uint   `gorm:"not null;index"`
	MealType string `gorm:"not null"`
	MealName string `gorm:"not null"`
	MealDate string `gorm:"not null"`
	MealTime string `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}
