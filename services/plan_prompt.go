package services

import (
	"fmt"
	"strings"

	"github.com/dev-callsign-hawk/diet-wise/models"
)

func dietLabel(pref string) string {
	switch pref {
	case models.DietVegetarian:
		return "vegetarian"
	case models.DietVegan:
		return "vegan"
	default:
		return "non-vegetarian"
	}
}

func goalVerb(goalType string) string {
	if goalType == models.GoalTypeWeightGain {
		return "gain"
	}
	return "lose"
}

// BuildPlanPrompt produces the generation prompt for a goal. The JSON shape
// spelled out at the end is a contract with ParsePlanResponse: field names
// must not change independently.
func BuildPlanPrompt(goal *models.Goal, targetCalories int) string {
	var sb strings.Builder

	sb.WriteString("You are a professional nutritionist. Create a one-day meal plan for a client.\n\n")

	sb.WriteString("CLIENT PROFILE:\n")
	sb.WriteString(fmt.Sprintf("- Age: %d years\n", goal.AgeYears))
	sb.WriteString(fmt.Sprintf("- Current weight: %.1f kg\n", goal.CurrentWeightKg))
	sb.WriteString(fmt.Sprintf("- Target weight: %.1f kg\n", goal.TargetWeightKg))
	sb.WriteString(fmt.Sprintf("- Goal: %s %.1f kg over %d weeks\n",
		goalVerb(goal.GoalType),
		absKg(goal.TargetWeightKg-goal.CurrentWeightKg),
		goal.DurationWeeks))
	sb.WriteString(fmt.Sprintf("- Diet preference: %s\n\n", dietLabel(goal.DietPreference)))

	sb.WriteString(fmt.Sprintf("The plan must total approximately %d calories for the day, ", targetCalories))
	sb.WriteString("split across breakfast, lunch, dinner and optional snacks.\n")
	sb.WriteString("Use simple, widely available foods that match the diet preference.\n\n")

	sb.WriteString("Respond with ONLY a JSON object in exactly this format, no other text:\n")
	sb.WriteString("{\n")
	sb.WriteString(fmt.Sprintf("  \"dailyCalories\": %d,\n", targetCalories))
	sb.WriteString("  \"breakfast\": {\"foods\": [\"food 1\", \"food 2\"], \"calories\": number, \"description\": \"short description\"},\n")
	sb.WriteString("  \"lunch\": {\"foods\": [\"food 1\", \"food 2\"], \"calories\": number, \"description\": \"short description\"},\n")
	sb.WriteString("  \"dinner\": {\"foods\": [\"food 1\", \"food 2\"], \"calories\": number, \"description\": \"short description\"},\n")
	sb.WriteString("  \"snacks\": [{\"name\": \"snack name\", \"foods\": [\"food 1\"], \"calories\": number}]\n")
	sb.WriteString("}\n")

	return sb.String()
}

func absKg(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
