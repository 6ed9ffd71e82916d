package models

import (
	"gorm.io/gorm"
)

const (
	GoalTypeWeightLoss = "weight_loss"
	GoalTypeWeightGain = "weight_gain"
)

const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non_vegetarian"
	DietVegan         = "vegan"
)

// Goal holds the parameters a user picked during goal setup. A user has at
// most one active goal; creating a new goal deactivates the previous one.
type Goal struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	GoalType        string `gorm:"size:20;not null"` // "weight_loss" | "weight_gain"
	CurrentWeightKg float64
	TargetWeightKg  float64
	AgeYears        int
	DietPreference  string `gorm:"size:20"` // "vegetarian" | "non_vegetarian" | "vegan"
	DurationWeeks   int
	Active          bool `gorm:"default:true"`
}
