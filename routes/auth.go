package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Local email/password accounts
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))

		// Google sign-in via Firebase ID tokens
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
		authGroup.POST("/google-admin", auth.GoogleAdminLoginHandler(db))
	}
}
