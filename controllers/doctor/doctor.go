package doctorcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	"github.com/chauvanhung/hoanglinhmedicine-api/listing"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

const (
	doctorCacheKey = "catalog:doctors"
	doctorCacheTTL = 10 * time.Minute
)

// GetDoctors lists available doctors for the consultation booking page.
// Query params: search (name), specialty.
func GetDoctors(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doctors []models.Doctor
		ctx := c.Request.Context()
		if !rc.GetJSON(ctx, doctorCacheKey, &doctors) {
			if err := db.Where("available = ?", true).Order("rating DESC").Find(&doctors).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
				return
			}
			rc.SetJSON(ctx, doctorCacheKey, doctors, doctorCacheTTL)
		}

		query := listing.Query[models.Doctor]{
			Search: c.Query("search"),
			SearchFields: []func(models.Doctor) string{
				func(d models.Doctor) string { return d.Name },
			},
			Matches: []listing.Match[models.Doctor]{
				{Value: c.Query("specialty"), Field: func(d models.Doctor) string { return d.Specialty }},
			},
		}
		c.JSON(http.StatusOK, listing.Apply(doctors, query))
	}
}

func GetDoctorByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var doctor models.Doctor
		if err := db.First(&doctor, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusOK, doctor)
	}
}

type DoctorInput struct {
	Name       string  `json:"name" binding:"required"`
	Specialty  string  `json:"specialty"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Experience int     `json:"experience"`
	Available  *bool   `json:"available"`
}

// CreateDoctor adds a doctor to the consultation roster (admin).
func CreateDoctor(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DoctorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doctor := models.Doctor{
			Name:       input.Name,
			Specialty:  input.Specialty,
			Image:      input.Image,
			Price:      input.Price,
			Experience: input.Experience,
			Available:  true,
		}
		if input.Available != nil {
			doctor.Available = *input.Available
		}

		if err := db.Create(&doctor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
			return
		}
		rc.Invalidate(c.Request.Context(), doctorCacheKey)
		c.JSON(http.StatusCreated, doctor)
	}
}

// UpdateDoctor edits the roster entry (admin).
func UpdateDoctor(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var doctor models.Doctor
		if err := db.First(&doctor, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}

		var input DoctorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doctor.Name = input.Name
		doctor.Specialty = input.Specialty
		doctor.Image = input.Image
		doctor.Price = input.Price
		doctor.Experience = input.Experience
		if input.Available != nil {
			doctor.Available = *input.Available
		}

		if err := db.Save(&doctor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor"})
			return
		}
		rc.Invalidate(c.Request.Context(), doctorCacheKey)
		c.JSON(http.StatusOK, doctor)
	}
}
