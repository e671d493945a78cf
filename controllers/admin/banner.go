package admincontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

const bannerPublicPath = "/uploads/banners"

func bannerUploadDir() string {
	base := os.Getenv("UPLOAD_DIR")
	if base == "" {
		base = "/var/www/hoanglinhmedicine/uploads"
	}
	return filepath.Join(base, "banners")
}

// UploadBanner stores a promotional image and creates its banner row.
// Form fields: image (required), title, link, position.
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := bannerUploadDir()
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(fileHeader.Filename)
		base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

		if err := c.SaveUploadedFile(fileHeader, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		position, _ := strconv.Atoi(c.PostForm("position"))
		banner := models.Banner{
			Title:    c.PostForm("title"),
			Image:    fmt.Sprintf("%s/%s", bannerPublicPath, filename),
			Link:     c.PostForm("link"),
			Position: position,
			Active:   true,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner"})
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}

// GetBanners returns active banners for the home page, in display order.
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Where("active = ?", true).
			Order("position, created_at DESC").
			Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GetAllBanners returns every banner for the admin dashboard.
func GetAllBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("position, created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner removes the row and its stored image file.
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		if banner.Image != "" {
			_ = os.Remove(filepath.Join(bannerUploadDir(), filepath.Base(banner.Image)))
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
	}
}
