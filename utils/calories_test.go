package utils

import (
	"testing"

	"github.com/dev-callsign-hawk/diet-wise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTargetCaloriesWeightLoss(t *testing.T) {
	// 10 kg over 10 weeks = 1 kg/week = 500 kcal/day deficit; age 30 keeps
	// the higher base of 1600.
	got, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 80, 70, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, 1100, got)
}

func TestComputeTargetCaloriesWeightGain(t *testing.T) {
	// 10 kg over 20 weeks = 0.5 kg/week = 250 kcal/day surplus; age 35 drops
	// the base to 1400.
	got, err := ComputeTargetCalories(models.GoalTypeWeightGain, 60, 70, 35, 20)
	require.NoError(t, err)
	assert.Equal(t, 1650, got)
}

func TestComputeTargetCaloriesDeterministic(t *testing.T) {
	first, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 92.5, 85, 42, 16)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 92.5, 85, 42, 16)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTargetCaloriesZeroDuration(t *testing.T) {
	_, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 80, 70, 30, 0)
	assert.Error(t, err)
}

func TestComputeTargetCaloriesInvalidWeights(t *testing.T) {
	_, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 0, 70, 30, 10)
	assert.Error(t, err)

	_, err = ComputeTargetCalories(models.GoalTypeWeightGain, 80, -5, 30, 10)
	assert.Error(t, err)
}

func TestComputeTargetCaloriesNoDeltaEqualsBase(t *testing.T) {
	got, err := ComputeTargetCalories(models.GoalTypeWeightLoss, 70, 70, 25, 8)
	require.NoError(t, err)
	assert.Equal(t, 1600, got)
}
