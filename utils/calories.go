package utils

import (
	"errors"
	"math"

	"github.com/dev-callsign-hawk/diet-wise/models"
)

// One kg of body mass is treated as 3500 kcal. A simplifying approximation,
// not exact physiology.
const caloriesPerKg = 3500.0

// ComputeTargetCalories derives a daily calorie target from goal parameters.
// The base is a coarse two-bucket estimate (1600 kcal up to age 30, 1400
// above), adjusted by the daily deficit/surplus needed to reach the target
// weight within the duration.
func ComputeTargetCalories(goalType string, currentWeightKg, targetWeightKg float64, ageYears, durationWeeks int) (int, error) {
	if currentWeightKg <= 0 || targetWeightKg <= 0 {
		return 0, errors.New("weights must be positive")
	}
	if durationWeeks < 1 {
		return 0, errors.New("duration must be at least one week")
	}

	weightDeltaKg := math.Abs(targetWeightKg - currentWeightKg)
	weeklyDeltaKg := weightDeltaKg / float64(durationWeeks)
	dailyAdjustment := weeklyDeltaKg * caloriesPerKg / 7

	base := 1500.0
	if ageYears > 30 {
		base -= 100
	} else {
		base += 100
	}

	if goalType == models.GoalTypeWeightLoss {
		return int(math.Round(base - dailyAdjustment)), nil
	}
	return int(math.Round(base + dailyAdjustment)), nil
}
