package consultationcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

var (
	ErrConsultationNotFound      = errors.New("consultation not found")
	ErrNotConsultationOwner      = errors.New("not consultation owner")
	ErrConsultationNotCancelable = errors.New("consultation is not pending")
)

// canCancel holds the cancel contract: only the owner may cancel, and only
// while the booking is still pending. An already cancelled booking fails
// the status check, so a repeated cancel is rejected cleanly.
func canCancel(consultation models.Consultation, userID string) error {
	if consultation.UserID != userID {
		return ErrNotConsultationOwner
	}
	if consultation.Status != models.ConsultationStatusPending {
		return ErrConsultationNotCancelable
	}
	return nil
}

// CancelConsultation cancels a pending consultation owned by userID,
// freeing the doctor's slot.
func CancelConsultation(db *gorm.DB, id, userID string) error {
	var consultation models.Consultation
	if err := db.First(&consultation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConsultationNotFound
		}
		return err
	}

	if err := canCancel(consultation, userID); err != nil {
		return err
	}

	return db.Model(&consultation).
		Update("status", models.ConsultationStatusCancelled).Error
}

// POST /user/consultations/:id/cancel
// Responds with the {success, message} envelope the storefront expects.
func CancelConsultationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id := c.Param("id")

		err := CancelConsultation(db, id, userID.(string))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Đã hủy lịch tư vấn",
			})
		case errors.Is(err, ErrConsultationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Không tìm thấy lịch tư vấn",
			})
		case errors.Is(err, ErrNotConsultationOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Bạn không có quyền thực hiện thao tác này",
			})
		case errors.Is(err, ErrConsultationNotCancelable):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Chỉ có thể hủy lịch tư vấn đang chờ xác nhận",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Hủy lịch thất bại, vui lòng thử lại",
			})
		}
	}
}
