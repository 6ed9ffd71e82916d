package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	Birthday       time.Time
	HeightCm       float64
	WeightKg       float64 // starting weight, updated during onboarding
	DietPreference string  `gorm:"size:20"` // "vegetarian" | "non_vegetarian" | "vegan"
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool
	Onboarded      bool
}
