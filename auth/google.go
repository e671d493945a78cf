package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// POST /auth/google
// Verifies a Firebase ID token from the storefront's Google sign-in,
// upserts the user and issues a session JWT.
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
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
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Phiên đăng nhập Google không hợp lệ"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		var user models.User
		err = db.Where("id = ?", uid).First(&user).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:          uid,
				Email:       email,
				Name:        name,
				Picture:     picture,
				Role:        models.RoleUser,
				Provider:    "google",
				CreatedAt:   time.Now(),
				LastLoginAt: time.Now(),
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(map[string]interface{}{
				"name":          name,
				"picture":       picture,
				"last_login_at": time.Now(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		jwtStr, err := IssueJWT(user.ID, user.Email, string(user.Role), user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgTokenIssueFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Đăng nhập thành công",
			"user":    user,
			"token":   jwtStr,
		})
	}
}
