package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// CreateProduct creates a new catalog entry from a multipart form with an
// optional image upload. Numeric and boolean fields are coerced from their
// form-string representation before persistence.
func CreateProduct(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryIDStr := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and category_id are required"})
			return
		}

		price, ok := parseFloat(priceStr)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var category models.Category
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			CategoryID:  category.ID,

			Manufacturer:      c.PostForm("manufacturer"),
			Origin:            c.PostForm("origin"),
			Expiry:            c.PostForm("expiry"),
			Packaging:         c.PostForm("packaging"),
			Ingredients:       c.PostForm("ingredients"),
			Storage:           c.PostForm("storage"),
			Dosage:            c.PostForm("dosage"),
			Usage:             c.PostForm("usage"),
			Target:            c.PostForm("target"),
			SideEffects:       c.PostForm("side_effects"),
			Contraindications: c.PostForm("contraindications"),
		}

		if v, ok := parseFloat(c.PostForm("original_price")); ok {
			product.OriginalPrice = v
		}
		if v, ok := parseInt(c.PostForm("stock")); ok {
			product.Stock = v
		}
		if v, ok := parseBool(c.PostForm("prescription")); ok {
			product.Prescription = v
		}

		if file, err := c.FormFile("image"); err == nil {
			url, err := saveProductImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		rc.Invalidate(c.Request.Context(), productCacheKey)

		c.JSON(http.StatusCreated, product)
	}
}
