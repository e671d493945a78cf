package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	admincontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/admin"
	articlecontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/article"
	categorycontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/category"
	consultationcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/consultation"
	doctorcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/doctor"
	ordercontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/order"
	productcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/product"
	usercontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/user"
	"github.com/chauvanhung/hoanglinhmedicine-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, rc *cache.Client) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", admincontroller.GetAllAdmins(db))
		adminGroup.GET("/users", usercontroller.GetAllUsers(db))
		adminGroup.PUT("/users/:id/role", usercontroller.UpdateUserRole(db))

		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", admincontroller.ListPendingAdmins(db))
			adminMgmt.POST("/approve", admincontroller.ApproveAdmin(db))
			adminMgmt.POST("/reject", admincontroller.RejectAdmin(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db, rc))
			productAdmin.POST("", productcontroller.CreateProduct(db, rc))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, rc))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, rc))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db, rc))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categorycontroller.GetAllCategories(db))
			categoryAdmin.POST("", categorycontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", ordercontroller.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", ordercontroller.UpdatePaymentStatusHandler(db))
			orderAdmin.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
		}

		// ─────────── Consultation Management ───────────
		consultAdmin := adminGroup.Group("/consultations")
		{
			consultAdmin.GET("", consultationcontroller.GetAllConsultationsHandler(db))
			consultAdmin.PUT("/:id/status", consultationcontroller.UpdateStatusHandler(db))
		}

		// ─────────── Doctor Roster ───────────
		doctorAdmin := adminGroup.Group("/doctors")
		{
			doctorAdmin.POST("", doctorcontroller.CreateDoctor(db, rc))
			doctorAdmin.PUT("/:id", doctorcontroller.UpdateDoctor(db, rc))
		}

		// ─────────── Home Page Banners ───────────
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.GET("", admincontroller.GetAllBanners(db))
			bannerAdmin.POST("", admincontroller.UploadBanner(db))
			bannerAdmin.DELETE("/:id", admincontroller.DeleteBanner(db))
		}

		// ─────────── Health Articles ───────────
		articleAdmin := adminGroup.Group("/articles")
		{
			articleAdmin.POST("", articlecontroller.CreateArticle(db))
			articleAdmin.PUT("/:id", articlecontroller.UpdateArticle(db))
			articleAdmin.DELETE("/:id", articlecontroller.DeleteArticle(db))
		}
	}
}
