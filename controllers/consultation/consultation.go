package consultationcontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chauvanhung/hoanglinhmedicine-api/listing"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

var (
	ErrDoctorUnavailable = errors.New("doctor is not available")
	ErrSlotTaken         = errors.New("slot already booked")
)

type BookRequest struct {
	DoctorID      uint   `json:"doctor_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Duration      int    `json:"duration"`
	Symptoms      string `json:"symptoms"`
	PaymentMethod string `json:"payment_method"`
}

func mapConsultationStatus(status string) (models.ConsultationStatus, error) {
	switch models.ConsultationStatus(strings.ToLower(status)) {
	case models.ConsultationStatusPending:
		return models.ConsultationStatusPending, nil
	case models.ConsultationStatusConfirmed:
		return models.ConsultationStatusConfirmed, nil
	case models.ConsultationStatusCompleted:
		return models.ConsultationStatusCompleted, nil
	case models.ConsultationStatusCancelled:
		return models.ConsultationStatusCancelled, nil
	default:
		return "", errors.New("invalid consultation status")
	}
}

// Book creates a consultation for userID, snapshotting the doctor's
// profile into the record. The same doctor/date/time slot can only be
// booked once; the check runs inside the transaction that creates the row.
func Book(db *gorm.DB, userID string, req BookRequest) (*models.Consultation, error) {
	var consultation models.Consultation

	err := db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&doctor, req.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDoctorUnavailable
			}
			return err
		}
		if !doctor.Available {
			return ErrDoctorUnavailable
		}

		var clash int64
		if err := tx.Model(&models.Consultation{}).
			Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?",
				doctor.ID, req.Date, req.Time, models.ConsultationStatusCancelled).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return ErrSlotTaken
		}

		duration := req.Duration
		if duration <= 0 {
			duration = 30
		}

		consultation = models.Consultation{
			UserID:          userID,
			DoctorID:        doctor.ID,
			DoctorName:      doctor.Name,
			DoctorSpecialty: doctor.Specialty,
			DoctorImage:     doctor.Image,
			Date:            req.Date,
			Time:            req.Time,
			Duration:        duration,
			Status:          models.ConsultationStatusPending,
			Symptoms:        req.Symptoms,
			Price:           doctor.Price,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   req.PaymentMethod,
			CreatedAt:       time.Now(),
		}
		return tx.Create(&consultation).Error
	})
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

// POST /user/consultations
func BookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var req BookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		consultation, err := Book(db, userID.(string), req)
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, consultation)
		case errors.Is(err, ErrDoctorUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bác sĩ hiện không nhận tư vấn"})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Khung giờ này đã được đặt"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Đặt lịch thất bại, vui lòng thử lại"})
		}
	}
}

// GET /user/consultations
func GetUserConsultationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var consultations []models.Consultation
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&consultations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultations"})
			return
		}
		c.JSON(http.StatusOK, consultations)
	}
}

// GET /admin/consultations: search over doctor name and symptoms plus a
// status filter, via the shared listing pipeline.
func GetAllConsultationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var consultations []models.Consultation
		if err := db.
			Preload("User").
			Order("created_at DESC").
			Find(&consultations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultations"})
			return
		}

		query := listing.Query[models.Consultation]{
			Search: c.Query("search"),
			SearchFields: []func(models.Consultation) string{
				func(cs models.Consultation) string { return cs.DoctorName },
				func(cs models.Consultation) string { return cs.Symptoms },
				func(cs models.Consultation) string { return cs.User.Email },
			},
			Matches: []listing.Match[models.Consultation]{
				{Value: c.Query("status"), Field: func(cs models.Consultation) string { return string(cs.Status) }},
			},
		}
		c.JSON(http.StatusOK, listing.Apply(consultations, query))
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// PUT /admin/consultations/:id/status: transition-validated; completing a
// consultation may attach the doctor's notes.
func UpdateStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapConsultationStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var consultation models.Consultation
		if err := db.First(&consultation, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}

		if !models.CanTransitionConsultation(consultation.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "invalid status transition",
				"from":  consultation.Status,
				"to":    newStatus,
			})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.ConsultationStatusCompleted && req.Notes != "" {
			updates["notes"] = req.Notes
		}
		if err := db.Model(&consultation).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consultation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Consultation status updated successfully"})
	}
}
