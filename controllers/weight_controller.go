package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dev-callsign-hawk/diet-wise/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WeightInput struct {
	WeightKg   float64 `json:"weight_kg" binding:"required,gt=0"`
	RecordedAt string  `json:"recorded_at"` // optional, RFC 3339
}

func LogWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recordedAt time.Time
	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recorded_at, use RFC 3339"})
			return
		}
		recordedAt = t
	}

	entry, err := services.LogWeight(uid, input.WeightKg, recordedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func GetWeightHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := services.ListWeights(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func GetProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := services.GetProgress(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active goal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}
