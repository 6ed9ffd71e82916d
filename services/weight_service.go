package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dev-callsign-hawk/diet-wise/config"
	"github.com/dev-callsign-hawk/diet-wise/models"

	"gorm.io/gorm"
)

// LogWeight records a measurement against the active goal (if any) and emits
// a milestone alert once the user is within a kilogram of the target.
func LogWeight(userID uint, weightKg float64, recordedAt time.Time) (*models.WeightEntry, error) {
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	entry := &models.WeightEntry{
		UserID:     userID,
		WeightKg:   weightKg,
		RecordedAt: recordedAt,
	}

	var goal models.Goal
	err := config.DB.
		Where("user_id = ? AND active = ?", userID, true).
		First(&goal).Error
	if err == nil {
		entry.GoalID = goal.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	if entry.GoalID != 0 && math.Abs(weightKg-goal.TargetWeightKg) <= 1.0 {
		EmitAlert(userID, "milestone",
			fmt.Sprintf("You are within 1 kg of your %.1f kg target!", goal.TargetWeightKg))
	}

	return entry, nil
}

func ListWeights(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&entries).Error
	return entries, err
}

// GetProgress summarizes how far along the active goal is, based on the most
// recent weight entry. This is the data source for the progress chart.
func GetProgress(userID uint) (map[string]interface{}, error) {
	var goal models.Goal
	if err := config.DB.
		Where("user_id = ? AND active = ?", userID, true).
		First(&goal).Error; err != nil {
		return nil, err
	}

	current := goal.CurrentWeightKg
	var latest models.WeightEntry
	err := config.DB.
		Where("user_id = ? AND goal_id = ?", userID, goal.ID).
		Order("recorded_at DESC").
		First(&latest).Error
	if err == nil {
		current = latest.WeightKg
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	changed := current - goal.CurrentWeightKg
	return map[string]interface{}{
		"goal_id":    goal.ID,
		"goal_type":  goal.GoalType,
		"start_kg":   goal.CurrentWeightKg,
		"current_kg": current,
		"target_kg":  goal.TargetWeightKg,
		"changed_kg": changed,
		"percent":    progressPercent(goal.GoalType, goal.CurrentWeightKg, current, goal.TargetWeightKg),
	}, nil
}

// progressPercent is the fraction of the planned weight change achieved so
// far, clamped to [0, 1].
func progressPercent(goalType string, startKg, currentKg, targetKg float64) float64 {
	total := targetKg - startKg
	done := currentKg - startKg
	if goalType == models.GoalTypeWeightLoss {
		total, done = -total, -done
	}
	if total <= 0 {
		return 0
	}
	p := done / total
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
