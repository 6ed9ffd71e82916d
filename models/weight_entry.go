package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightEntry struct {
	gorm.Model
	UserID     uint `gorm:"index;not null"`
	GoalID     uint `gorm:"index"`
	WeightKg   float64
	RecordedAt time.Time `gorm:"index;not null"`
}
