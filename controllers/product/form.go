package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var uploadDir = envOr("UPLOAD_DIR", "/var/www/hoanglinhmedicine/uploads")

const productPublicPath = "/uploads/products"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Form values arrive as strings; these coerce them to the persisted types
// so "10" is stored as the integer 10.
func parseFloat(val string) (float64, bool) {
	if val == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val, 64)
	return f, err == nil
}

func parseInt(val string) (int, bool) {
	if val == "" {
		return 0, false
	}
	i, err := strconv.Atoi(val)
	return i, err == nil
}

func parseBool(val string) (bool, bool) {
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	return b, err == nil
}

// saveProductImage stores an uploaded image and returns its public URL.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(uploadDir, "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}
