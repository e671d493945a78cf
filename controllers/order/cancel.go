package ordercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotOrderOwner      = errors.New("not order owner")
	ErrOrderNotCancelable = errors.New("order is not pending")
)

// canCancel holds the cancel contract: only the owner may cancel, and only
// while the order is still pending. An already cancelled order fails the
// status check, so a repeated cancel is rejected cleanly.
func canCancel(order models.Order, userID string) error {
	if order.UserID != userID {
		return ErrNotOrderOwner
	}
	if order.Status != models.OrderStatusPending {
		return ErrOrderNotCancelable
	}
	return nil
}

// restockQuantities sums the units to return to stock per product.
func restockQuantities(items []models.OrderItem) map[uint]int {
	restock := make(map[uint]int, len(items))
	for _, item := range items {
		restock[item.ProductID] += item.Quantity
	}
	return restock
}

// CancelOrder cancels a pending order owned by userID and restores the
// reserved stock. Accepts a numeric id or an order_ref, like the read path.
func CancelOrder(db *gorm.DB, orderID, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", orderID, orderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := canCancel(order, userID); err != nil {
			return err
		}

		for productID, qty := range restockQuantities(order.Items) {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).
				Update("stock", gorm.Expr("stock + ?", qty)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("status", models.OrderStatusCancelled).Error
	})
}

// POST /user/orders/:orderID/cancel
// Responds with the {success, message} envelope the storefront expects.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		orderID := c.Param("orderID")

		err := CancelOrder(db, orderID, userID.(string))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Đã hủy đơn hàng",
			})
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Không tìm thấy đơn hàng",
			})
		case errors.Is(err, ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Bạn không có quyền hủy đơn hàng này",
			})
		case errors.Is(err, ErrOrderNotCancelable):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Chỉ có thể hủy đơn hàng đang chờ xác nhận",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Hủy đơn hàng thất bại, vui lòng thử lại",
			})
		}
	}
}
