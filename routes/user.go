package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	consultationcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/consultation"
	healthcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/health"
	ordercontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/order"
	productcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/product"
	usercontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/user"
	"github.com/chauvanhung/hoanglinhmedicine-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", usercontroller.GetUser(db))
		userGroup.PUT("/", usercontroller.UpdateUser(db))

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", ordercontroller.PlaceOrderHandler(db))
			orderGroup.GET("", ordercontroller.GetUserOrdersHandler(db))
			orderGroup.GET("/:orderID", ordercontroller.GetOrderByIDHandler(db))
			orderGroup.POST("/:orderID/cancel", ordercontroller.CancelOrderHandler(db))
		}

		// ──────────────── Consultations ────────────────
		consultGroup := userGroup.Group("/consultations")
		{
			consultGroup.POST("", consultationcontroller.BookHandler(db))
			consultGroup.GET("", consultationcontroller.GetUserConsultationsHandler(db))
			consultGroup.POST("/:id/cancel", consultationcontroller.CancelConsultationHandler(db))
		}

		// ──────────────── Product Reviews ────────────────
		userGroup.POST("/products/:id/reviews", productcontroller.AddReview(db))

		// ──────────────── Health Tracking ────────────────
		healthGroup := userGroup.Group("/health")
		{
			healthGroup.GET("/profile", healthcontroller.GetProfile(db))
			healthGroup.PUT("/profile", healthcontroller.UpsertProfile(db))
			healthGroup.GET("/goals", healthcontroller.GetGoals(db))
			healthGroup.POST("/goals", healthcontroller.CreateGoal(db))
			healthGroup.PUT("/goals/:id/achieve", healthcontroller.AchieveGoal(db))
			healthGroup.DELETE("/goals/:id", healthcontroller.DeleteGoal(db))
			healthGroup.GET("/measurements", healthcontroller.GetMeasurements(db))
			healthGroup.POST("/measurements", healthcontroller.AddMeasurement(db))
		}
	}
}
