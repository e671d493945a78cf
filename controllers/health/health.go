package healthcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// GET /user/health/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var profile models.HealthProfile
		if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, models.HealthProfile{UserID: userID.(string)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type ProfileInput struct {
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	BloodType string  `json:"blood_type"`
	Allergies string  `json:"allergies"`
	Chronic   string  `json:"chronic"`
}

// PUT /user/health/profile: creates the profile on first save.
func UpsertProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var profile models.HealthProfile
		err := db.Where("user_id = ?", userID).First(&profile).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}

		profile.UserID = userID.(string)
		profile.Height = input.Height
		profile.Weight = input.Weight
		profile.BloodType = input.BloodType
		profile.Allergies = input.Allergies
		profile.Chronic = input.Chronic

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type GoalInput struct {
	Title    string  `json:"title" binding:"required"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Deadline string  `json:"deadline"`
}

// GET /user/health/goals
func GetGoals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var goals []models.HealthGoal
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").Find(&goals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// POST /user/health/goals
func CreateGoal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input GoalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		goal := models.HealthGoal{
			UserID:   userID.(string),
			Title:    input.Title,
			Target:   input.Target,
			Unit:     input.Unit,
			Deadline: input.Deadline,
		}
		if err := db.Create(&goal).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

// PUT /user/health/goals/:id/achieve
func AchieveGoal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id := c.Param("id")

		result := db.Model(&models.HealthGoal{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("achieved", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Goal marked as achieved"})
	}
}

// DELETE /user/health/goals/:id
func DeleteGoal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).
			Delete(&models.HealthGoal{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
	}
}

type MeasurementInput struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit"`
	Note  string  `json:"note"`
}

// GET /user/health/measurements?type=weight
func GetMeasurements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		q := db.Where("user_id = ?", userID)
		if mType := c.Query("type"); mType != "" {
			q = q.Where("type = ?", mType)
		}

		var measurements []models.Measurement
		if err := q.Order("recorded_at DESC").Find(&measurements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch measurements"})
			return
		}
		c.JSON(http.StatusOK, measurements)
	}
}

// POST /user/health/measurements
func AddMeasurement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input MeasurementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m := models.Measurement{
			UserID:     userID.(string),
			Type:       input.Type,
			Value:      input.Value,
			Unit:       input.Unit,
			Note:       input.Note,
			RecordedAt: time.Now(),
		}
		if err := db.Create(&m).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record measurement"})
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}
