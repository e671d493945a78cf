package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	admincontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/admin"
	articlecontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/article"
	categorycontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/category"
	doctorcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/doctor"
	productcontroller "github.com/chauvanhung/hoanglinhmedicine-api/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated browse endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, rc *cache.Client) {
	r.GET("/products", productcontroller.GetProducts(db, rc))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	r.GET("/categories", categorycontroller.GetAllCategories(db))
	r.GET("/categories/:id", categorycontroller.GetCategoryByID(db))

	r.GET("/doctors", doctorcontroller.GetDoctors(db, rc))
	r.GET("/doctors/:id", doctorcontroller.GetDoctorByID(db))

	r.GET("/banners", admincontroller.GetBanners(db))

	r.GET("/articles", articlecontroller.GetArticles(db))
	r.GET("/articles/:id", articlecontroller.GetArticleByID(db))
	r.POST("/articles/:id/like", articlecontroller.LikeArticle(db))
}
