package services

import (
	"encoding/json"
	"log"
	"math"
	"strings"

	"github.com/dev-callsign-hawk/diet-wise/models"
)

// MealEntry and SnackEntry mirror the JSON shape requested in the prompt.
type MealEntry struct {
	Foods       []string `json:"foods"`
	Calories    int      `json:"calories"`
	Description string   `json:"description"`
}

type SnackEntry struct {
	Name     string   `json:"name"`
	Foods    []string `json:"foods"`
	Calories int      `json:"calories"`
}

type GeneratedPlan struct {
	DailyCalories int          `json:"dailyCalories"`
	Breakfast     MealEntry    `json:"breakfast"`
	Lunch         MealEntry    `json:"lunch"`
	Dinner        MealEntry    `json:"dinner"`
	Snacks        []SnackEntry `json:"snacks"`
	Source        string       `json:"source"` // "generated" | "fallback"
}

// ParsePlanResponse extracts a plan from raw model output. It never fails:
// any malformed or missing JSON yields the deterministic fallback plan, so
// callers always get a usable plan. The extraction is a greedy first-"{" to
// last-"}" span; a model reply with stray braces after the JSON will fail the
// unmarshal and fall back, which is acceptable here.
func ParsePlanResponse(raw string, fallbackTarget int, dietPreference string) GeneratedPlan {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		log.Printf("plan response contained no JSON object, using fallback plan")
		return FallbackPlan(fallbackTarget, dietPreference)
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		log.Printf("plan response parse failed, using fallback plan: %v", err)
		return FallbackPlan(fallbackTarget, dietPreference)
	}
	if !planShapeValid(plan) {
		log.Printf("plan response failed shape validation, using fallback plan")
		return FallbackPlan(fallbackTarget, dietPreference)
	}

	plan.Source = models.PlanSourceGenerated
	return plan
}

func planShapeValid(p GeneratedPlan) bool {
	if p.DailyCalories <= 0 {
		return false
	}
	for _, m := range []MealEntry{p.Breakfast, p.Lunch, p.Dinner} {
		if len(m.Foods) == 0 || m.Calories < 0 {
			return false
		}
	}
	for _, s := range p.Snacks {
		if s.Calories < 0 {
			return false
		}
	}
	return true
}

// Fallback split: breakfast 25%, lunch 35%, dinner 30%, one snack 10%.
func pctOf(target int, pct float64) int {
	return int(math.Round(float64(target) * pct / 100))
}

func FallbackPlan(target int, dietPreference string) GeneratedPlan {
	var breakfast, lunch, dinner, snack []string
	switch dietPreference {
	case models.DietVegan:
		breakfast = []string{"Oatmeal with soy milk", "Banana", "Peanut butter"}
		lunch = []string{"Chickpea curry", "Brown rice", "Mixed green salad"}
		dinner = []string{"Tofu stir-fry", "Quinoa", "Steamed broccoli"}
		snack = []string{"Mixed nuts"}
	case models.DietVegetarian:
		breakfast = []string{"Oatmeal with milk", "Banana", "Almonds"}
		lunch = []string{"Lentil dal", "Brown rice", "Cucumber salad"}
		dinner = []string{"Paneer and vegetable curry", "Whole wheat roti", "Steamed vegetables"}
		snack = []string{"Greek yogurt"}
	default:
		breakfast = []string{"Scrambled eggs", "Whole wheat toast", "Orange"}
		lunch = []string{"Grilled chicken breast", "Brown rice", "Mixed green salad"}
		dinner = []string{"Baked fish", "Roasted potatoes", "Steamed vegetables"}
		snack = []string{"Boiled egg"}
	}

	return GeneratedPlan{
		DailyCalories: target,
		Breakfast: MealEntry{
			Foods:       breakfast,
			Calories:    pctOf(target, 25),
			Description: "A simple balanced breakfast.",
		},
		Lunch: MealEntry{
			Foods:       lunch,
			Calories:    pctOf(target, 35),
			Description: "A filling midday meal.",
		},
		Dinner: MealEntry{
			Foods:       dinner,
			Calories:    pctOf(target, 30),
			Description: "A light evening meal.",
		},
		Snacks: []SnackEntry{
			{Name: "Afternoon snack", Foods: snack, Calories: pctOf(target, 10)},
		},
		Source: models.PlanSourceFallback,
	}
}
