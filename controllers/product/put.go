package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same form
// fields as CreateProduct; only provided fields change.
func UpdateProduct(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v, ok := parseFloat(c.PostForm("price")); ok {
			product.Price = v
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
		if v := c.PostForm("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
		}

		for field, dst := range map[string]*string{
			"manufacturer":      &product.Manufacturer,
			"origin":            &product.Origin,
			"expiry":            &product.Expiry,
			"packaging":         &product.Packaging,
			"ingredients":       &product.Ingredients,
			"storage":           &product.Storage,
			"dosage":            &product.Dosage,
			"usage":             &product.Usage,
			"target":            &product.Target,
			"side_effects":      &product.SideEffects,
			"contraindications": &product.Contraindications,
		} {
			if v := c.PostForm(field); v != "" {
				*dst = v
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			if product.Image != "" {
				oldPath := filepath.Join(uploadDir, "products", filepath.Base(product.Image))
				_ = os.Remove(oldPath)
			}
			url, err := saveProductImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = url
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		rc.Invalidate(c.Request.Context(), productCacheKey)

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft deletes a product so past order items keep resolving.
func DeleteProduct(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		rc.Invalidate(c.Request.Context(), productCacheKey)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
