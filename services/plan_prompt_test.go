package services

import (
	"testing"

	"github.com/dev-callsign-hawk/diet-wise/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPlanPromptEmbedsGoalParameters(t *testing.T) {
	goal := &models.Goal{
		GoalType:        models.GoalTypeWeightLoss,
		CurrentWeightKg: 80,
		TargetWeightKg:  70,
		AgeYears:        30,
		DietPreference:  models.DietVegetarian,
		DurationWeeks:   10,
	}

	prompt := BuildPlanPrompt(goal, 1100)

	assert.Contains(t, prompt, "Age: 30 years")
	assert.Contains(t, prompt, "Current weight: 80.0 kg")
	assert.Contains(t, prompt, "Target weight: 70.0 kg")
	assert.Contains(t, prompt, "lose 10.0 kg over 10 weeks")
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "1100 calories")
}

// The parser unmarshals into these exact field names; the prompt must keep
// spelling them out.
func TestBuildPlanPromptEmbedsSchemaContract(t *testing.T) {
	goal := &models.Goal{
		GoalType:        models.GoalTypeWeightGain,
		CurrentWeightKg: 60,
		TargetWeightKg:  70,
		AgeYears:        35,
		DietPreference:  models.DietNonVegetarian,
		DurationWeeks:   20,
	}

	prompt := BuildPlanPrompt(goal, 1650)

	for _, field := range []string{
		`"dailyCalories"`, `"breakfast"`, `"lunch"`, `"dinner"`,
		`"snacks"`, `"foods"`, `"calories"`, `"description"`, `"name"`,
	} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "gain 10.0 kg over 20 weeks")
	assert.Contains(t, prompt, "non-vegetarian")
}
