package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rc *cache.Client) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog, doctors and articles
	SetupPublicRoutes(r, db, rc)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, rc)
}
