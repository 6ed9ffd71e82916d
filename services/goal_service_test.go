package services

import (
	"testing"

	"github.com/dev-callsign-hawk/diet-wise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRowsRoundTrip(t *testing.T) {
	generated := FallbackPlan(1500, models.DietVegetarian)

	rows := planRows(7, 42, &generated)
	assert.EqualValues(t, 7, rows.UserID)
	assert.EqualValues(t, 42, rows.GoalID)
	assert.Equal(t, models.PlanSourceFallback, rows.Source)
	require.Len(t, rows.Meals, 3)
	require.Len(t, rows.Snacks, 1)

	back := PlanResponse(rows)
	assert.Equal(t, generated, back)
}

func TestPlanRowsSlots(t *testing.T) {
	generated := FallbackPlan(2000, models.DietVegan)
	rows := planRows(1, 1, &generated)

	slots := make(map[string]models.PlanMeal, len(rows.Meals))
	for _, m := range rows.Meals {
		slots[m.Slot] = m
	}
	require.Contains(t, slots, models.SlotBreakfast)
	require.Contains(t, slots, models.SlotLunch)
	require.Contains(t, slots, models.SlotDinner)

	assert.Equal(t, generated.Breakfast.Calories, slots[models.SlotBreakfast].Calories)
	assert.Equal(t, "Oatmeal with soy milk,Banana,Peanut butter", slots[models.SlotBreakfast].Foods)
}
