package controllers

import (
	"errors"
	"net/http"

	"github.com/dev-callsign-hawk/diet-wise/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	Goals *services.GoalService
}

func NewPlanController(gs *services.GoalService) *PlanController {
	return &PlanController{Goals: gs}
}

func (pc *PlanController) GetPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	plan, err := pc.Goals.GetPlan(uid, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.PlanResponse(plan))
}

// RegeneratePlan replaces the stored plan with a freshly generated one.
func (pc *PlanController) RegeneratePlan(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	plan, err := pc.Goals.RegeneratePlan(uid, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		status, msg := planErrorStatus(err)
		c.JSON(status, gin.H{"error": msg, "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.PlanResponse(plan))
}
