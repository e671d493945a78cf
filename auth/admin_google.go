package auth

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// POST /auth/google-admin
// Admin sign-in via Google with an approval workflow: unknown emails are
// registered as pending and rejected until the super admin approves them.
func GoogleAdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ Admin ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		// Super admin shortcut
		if email == os.Getenv("SUPER_ADMIN_EMAIL") {
			respondAdminToken(c, uid, email, "superadmin", name, picture)
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (pending approval)", email)
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		respondAdminToken(c, uid, email, "admin", name, picture)
	}
}

func respondAdminToken(c *gin.Context, uid, email, role, name, picture string) {
	jwtStr, err := IssueJWT(uid, email, role, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgTokenIssueFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   jwtStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}
