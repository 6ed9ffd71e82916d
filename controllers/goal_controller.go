package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dev-callsign-hawk/diet-wise/models"
	"github.com/dev-callsign-hawk/diet-wise/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(gs *services.GoalService) *GoalController {
	return &GoalController{Goals: gs}
}

type GoalInput struct {
	GoalType        string  `json:"goal_type" binding:"required,oneof=weight_loss weight_gain"`
	CurrentWeightKg float64 `json:"current_weight_kg" binding:"required,gt=0"`
	TargetWeightKg  float64 `json:"target_weight_kg" binding:"required,gt=0"`
	AgeYears        int     `json:"age_years" binding:"required,gt=0"`
	DietPreference  string  `json:"diet_preference" binding:"required,oneof=vegetarian non_vegetarian vegan"`
	DurationWeeks   int     `json:"duration_weeks" binding:"required,gte=1"`
}

// CreateGoal sets up a new goal and returns the generated diet plan.
func (gc *GoalController) CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal parameters", "details": err.Error()})
		return
	}

	goal := &models.Goal{
		GoalType:        input.GoalType,
		CurrentWeightKg: input.CurrentWeightKg,
		TargetWeightKg:  input.TargetWeightKg,
		AgeYears:        input.AgeYears,
		DietPreference:  input.DietPreference,
		DurationWeeks:   input.DurationWeeks,
	}

	plan, err := gc.Goals.CreateGoal(uid, goal)
	if err != nil {
		status, msg := planErrorStatus(err)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"goal": goal,
		"plan": services.PlanResponse(plan),
	})
}

func (gc *GoalController) GetActiveGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, err := gc.Goals.GetActiveGoal(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active goal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"goal": goal}
	if plan, err := gc.Goals.GetPlan(uid, goal.ID); err == nil {
		resp["plan"] = services.PlanResponse(plan)
	}
	c.JSON(http.StatusOK, resp)
}

func (gc *GoalController) DeleteGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	if err := gc.Goals.DeleteGoal(uid, goalID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// planErrorStatus maps generation failures onto outward statuses:
// missing credential 503, provider failure 502, bad parameters 400.
func planErrorStatus(err error) (int, string) {
	var pe *services.ProviderError
	switch {
	case errors.Is(err, services.ErrNoAPIKey):
		return http.StatusServiceUnavailable, "plan generation is not configured"
	case errors.As(err, &pe):
		return http.StatusBadGateway, "plan generation failed"
	default:
		return http.StatusInternalServerError, "could not create goal"
	}
}
