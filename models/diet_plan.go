package models

import (
	"gorm.io/gorm"
)

const (
	PlanSourceGenerated = "generated"
	PlanSourceFallback  = "fallback"
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// DietPlan is generated once per goal and immutable until regenerated.
type DietPlan struct {
	gorm.Model
	GoalID        uint `gorm:"index;not null"`
	UserID        uint `gorm:"index;not null"`
	DailyCalories int
	Source        string      `gorm:"size:12"` // "generated" | "fallback"
	Meals         []PlanMeal  `gorm:"foreignKey:PlanID"`
	Snacks        []PlanSnack `gorm:"foreignKey:PlanID"`
}

type PlanMeal struct {
	gorm.Model
	PlanID      uint   `gorm:"index;not null"`
	Slot        string `gorm:"size:12;not null"` // "breakfast" | "lunch" | "dinner"
	Foods       string `gorm:"type:text"`        // comma-separated
	Calories    int
	Description string `gorm:"type:text"`
}

type PlanSnack struct {
	gorm.Model
	PlanID   uint `gorm:"index;not null"`
	Name     string
	Foods    string `gorm:"type:text"` // comma-separated
	Calories int
}
