package services

import (
	"fmt"
	"testing"

	"github.com/dev-callsign-hawk/diet-wise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanJSON = `{
  "dailyCalories": 1800,
  "breakfast": {"foods": ["Oatmeal", "Banana"], "calories": 450, "description": "Warm oatmeal with fruit"},
  "lunch": {"foods": ["Grilled chicken", "Rice"], "calories": 630, "description": "Protein-heavy lunch"},
  "dinner": {"foods": ["Baked fish", "Vegetables"], "calories": 540, "description": "Light dinner"},
  "snacks": [{"name": "Afternoon snack", "foods": ["Apple"], "calories": 180}]
}`

func TestParsePlanResponseValidJSON(t *testing.T) {
	plan := ParsePlanResponse(validPlanJSON, 1500, models.DietNonVegetarian)

	assert.Equal(t, models.PlanSourceGenerated, plan.Source)
	assert.Equal(t, 1800, plan.DailyCalories)
	assert.Equal(t, []string{"Oatmeal", "Banana"}, plan.Breakfast.Foods)
	assert.Equal(t, 630, plan.Lunch.Calories)
	assert.Equal(t, "Light dinner", plan.Dinner.Description)
	require.Len(t, plan.Snacks, 1)
	assert.Equal(t, "Afternoon snack", plan.Snacks[0].Name)
}

func TestParsePlanResponseJSONSurroundedByProse(t *testing.T) {
	raw := "Sure! Here is your plan:\n" + validPlanJSON + "\nEnjoy your meals."
	plan := ParsePlanResponse(raw, 1500, models.DietNonVegetarian)

	assert.Equal(t, models.PlanSourceGenerated, plan.Source)
	assert.Equal(t, 1800, plan.DailyCalories)
}

// The extraction spans from the first "{" to the last "}". Commentary after
// the JSON that contains a brace poisons the span and pushes us onto the
// fallback plan rather than an error.
func TestParsePlanResponseTrailingBraceFallsBack(t *testing.T) {
	raw := validPlanJSON + "\nNote: {this} is just commentary."
	plan := ParsePlanResponse(raw, 1500, models.DietNonVegetarian)

	assert.Equal(t, models.PlanSourceFallback, plan.Source)
	assert.Equal(t, 1500, plan.DailyCalories)
}

func TestParsePlanResponseNoJSONUsesFallback(t *testing.T) {
	plan := ParsePlanResponse("I am unable to help with that.", 2000, models.DietVegetarian)

	assert.Equal(t, models.PlanSourceFallback, plan.Source)
	assert.Equal(t, 2000, plan.DailyCalories)
}

func TestParsePlanResponseBadShapeUsesFallback(t *testing.T) {
	// Parses as JSON but fails shape validation: no meals, zero calories.
	plan := ParsePlanResponse(`{"dailyCalories": 0}`, 1600, models.DietVegan)

	assert.Equal(t, models.PlanSourceFallback, plan.Source)
	assert.Equal(t, 1600, plan.DailyCalories)
}

func TestFallbackPlanCalorieSplit(t *testing.T) {
	for _, target := range []int{1100, 1650, 2000, 1847} {
		t.Run(fmt.Sprintf("target%d", target), func(t *testing.T) {
			plan := FallbackPlan(target, models.DietNonVegetarian)

			require.Len(t, plan.Snacks, 1)
			total := plan.Breakfast.Calories + plan.Lunch.Calories +
				plan.Dinner.Calories + plan.Snacks[0].Calories
			// 25+35+30+10 = 100%, with at most 2 kcal of per-field rounding
			assert.InDelta(t, target, total, 2)
			assert.Equal(t, target, plan.DailyCalories)
		})
	}
}

func TestFallbackPlanRespectsDietPreference(t *testing.T) {
	vegan := FallbackPlan(1800, models.DietVegan)
	for _, foods := range [][]string{vegan.Breakfast.Foods, vegan.Lunch.Foods, vegan.Dinner.Foods} {
		assert.NotContains(t, foods, "Scrambled eggs")
		assert.NotContains(t, foods, "Grilled chicken breast")
	}

	nonVeg := FallbackPlan(1800, models.DietNonVegetarian)
	assert.Contains(t, nonVeg.Lunch.Foods, "Grilled chicken breast")
}

func TestFallbackPlanDeterministic(t *testing.T) {
	a := FallbackPlan(1500, models.DietVegetarian)
	b := FallbackPlan(1500, models.DietVegetarian)
	assert.Equal(t, a, b)
}
