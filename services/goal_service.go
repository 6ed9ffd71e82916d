package services

import (
	"fmt"
	"strings"

	"github.com/dev-callsign-hawk/diet-wise/config"
	"github.com/dev-callsign-hawk/diet-wise/models"

	"gorm.io/gorm"
)

type GoalService struct {
	plans *PlanService
}

func NewGoalService(p *PlanService) *GoalService {
	return &GoalService{plans: p}
}

// CreateGoal generates a diet plan for the submitted goal and persists both
// in one transaction, so a provider failure leaves no partial rows behind.
// Any previously active goal is deactivated.
func (s *GoalService) CreateGoal(userID uint, goal *models.Goal) (*models.DietPlan, error) {
	generated, err := s.plans.Generate(goal)
	if err != nil {
		return nil, err
	}

	goal.UserID = userID
	goal.Active = true

	var plan *models.DietPlan
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Goal{}).
			Where("user_id = ? AND active = ?", userID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		plan = planRows(userID, goal.ID, generated)
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}

	EmitAlert(userID, "info", fmt.Sprintf("Your %d-calorie diet plan is ready", plan.DailyCalories))
	return plan, nil
}

func (s *GoalService) GetActiveGoal(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.
		Where("user_id = ? AND active = ?", userID, true).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) GetPlan(userID, goalID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := config.DB.
		Preload("Meals").
		Preload("Snacks").
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// RegeneratePlan re-runs generation for an existing goal and replaces the
// stored plan. The old plan stays in place if generation fails.
func (s *GoalService) RegeneratePlan(userID, goalID uint) (*models.DietPlan, error) {
	var goal models.Goal
	if err := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		return nil, err
	}

	generated, err := s.plans.Generate(&goal)
	if err != nil {
		return nil, err
	}

	var plan *models.DietPlan
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := deletePlans(tx, userID, goalID); err != nil {
			return err
		}
		plan = planRows(userID, goalID, generated)
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteGoal removes the goal together with its plan and weight history.
func (s *GoalService) DeleteGoal(userID, goalID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := deletePlans(tx, userID, goalID); err != nil {
			return err
		}
		if err := tx.
			Where("goal_id = ? AND user_id = ?", goalID, userID).
			Delete(&models.WeightEntry{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ? AND user_id = ?", goalID, userID).
			Delete(&models.Goal{}).Error
	})
}

func deletePlans(tx *gorm.DB, userID, goalID uint) error {
	var planIDs []uint
	if err := tx.Model(&models.DietPlan{}).
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		Pluck("id", &planIDs).Error; err != nil {
		return err
	}
	if len(planIDs) == 0 {
		return nil
	}
	if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.PlanMeal{}).Error; err != nil {
		return err
	}
	if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.PlanSnack{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", planIDs).Delete(&models.DietPlan{}).Error
}

// planRows flattens a GeneratedPlan into persistable rows. Food lists are
// stored comma-joined, matching how the rest of the schema stores small
// string lists.
func planRows(userID, goalID uint, gp *GeneratedPlan) *models.DietPlan {
	plan := &models.DietPlan{
		GoalID:        goalID,
		UserID:        userID,
		DailyCalories: gp.DailyCalories,
		Source:        gp.Source,
		Meals: []models.PlanMeal{
			mealRow(models.SlotBreakfast, gp.Breakfast),
			mealRow(models.SlotLunch, gp.Lunch),
			mealRow(models.SlotDinner, gp.Dinner),
		},
	}
	for _, sn := range gp.Snacks {
		plan.Snacks = append(plan.Snacks, models.PlanSnack{
			Name:     sn.Name,
			Foods:    strings.Join(sn.Foods, ","),
			Calories: sn.Calories,
		})
	}
	return plan
}

func mealRow(slot string, m MealEntry) models.PlanMeal {
	return models.PlanMeal{
		Slot:        slot,
		Foods:       strings.Join(m.Foods, ","),
		Calories:    m.Calories,
		Description: m.Description,
	}
}

// PlanResponse rebuilds the wire shape from stored rows for GET endpoints.
func PlanResponse(p *models.DietPlan) GeneratedPlan {
	out := GeneratedPlan{
		DailyCalories: p.DailyCalories,
		Source:        p.Source,
	}
	for _, m := range p.Meals {
		entry := MealEntry{
			Foods:       splitFoods(m.Foods),
			Calories:    m.Calories,
			Description: m.Description,
		}
		switch m.Slot {
		case models.SlotBreakfast:
			out.Breakfast = entry
		case models.SlotLunch:
			out.Lunch = entry
		case models.SlotDinner:
			out.Dinner = entry
		}
	}
	for _, sn := range p.Snacks {
		out.Snacks = append(out.Snacks, SnackEntry{
			Name:     sn.Name,
			Foods:    splitFoods(sn.Foods),
			Calories: sn.Calories,
		})
	}
	return out
}

func splitFoods(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
