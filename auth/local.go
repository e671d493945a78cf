package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// User-facing messages, kept in Vietnamese to match the storefront.
const (
	msgEmailTaken       = "Email đã được sử dụng"
	msgBadCredentials   = "Email hoặc mật khẩu không đúng"
	msgAccountNotFound  = "Tài khoản không tồn tại"
	msgRegisterFailed   = "Đăng ký thất bại, vui lòng thử lại"
	msgTokenIssueFailed = "Không thể tạo phiên đăng nhập"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": msgEmailTaken})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFailed})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFailed})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        email,
			Name:         req.Name,
			Phone:        req.Phone,
			Role:         models.RoleUser,
			Provider:     "password",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
			LastLoginAt:  time.Now(),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFailed})
			return
		}

		token, err := IssueJWT(user.ID, user.Email, string(user.Role), user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgTokenIssueFailed})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Đăng ký thành công",
			"user":    user,
			"token":   token,
		})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnauthorized, gin.H{"error": msgAccountNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if user.PasswordHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgBadCredentials})
			return
		}

		db.Model(&user).Update("last_login_at", time.Now())

		token, err := IssueJWT(user.ID, user.Email, string(user.Role), user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgTokenIssueFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Đăng nhập thành công",
			"user":    user,
			"token":   token,
		})
	}
}
