package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	"github.com/chauvanhung/hoanglinhmedicine-api/listing"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

const (
	productCacheKey = "catalog:products"
	productCacheTTL = 5 * time.Minute
)

// GetProducts lists the catalog with search, category, price range and
// sort controls. The full catalog is cached; narrowing happens in memory
// through the shared listing pipeline.
//
// Query params: search, category (name or "all"/"Tất cả"), min_price,
// max_price, sort_by (newest|name|price-low|price-high|stock).
func GetProducts(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var minPrice, maxPrice float64
		var err error

		if v := c.Query("min_price"); v != "" {
			if minPrice, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if v := c.Query("max_price"); v != "" {
			if maxPrice, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		ctx := c.Request.Context()
		if !rc.GetJSON(ctx, productCacheKey, &products) {
			if err := db.Preload("Category").Order("created_at DESC").Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			rc.SetJSON(ctx, productCacheKey, products, productCacheTTL)
		}

		query := listing.Query[models.Product]{
			Search: c.Query("search"),
			SearchFields: []func(models.Product) string{
				func(p models.Product) string { return p.Name },
				func(p models.Product) string { return p.Description },
				func(p models.Product) string { return p.Manufacturer },
			},
			Matches: []listing.Match[models.Product]{
				{Value: c.Query("category"), Field: func(p models.Product) string { return p.Category.Name }},
			},
			Less: productComparator(c.DefaultQuery("sort_by", "newest")),
		}
		if minPrice > 0 || maxPrice > 0 {
			query.Ranges = []listing.Range[models.Product]{
				{Min: minPrice, Max: maxPrice, Field: func(p models.Product) float64 { return p.Price }},
			}
		}

		c.JSON(http.StatusOK, listing.Apply(products, query))
	}
}

func productComparator(sortBy string) func(a, b models.Product) bool {
	switch sortBy {
	case "name":
		return listing.ByString(func(p models.Product) string { return p.Name }, true)
	case "price-low":
		return listing.ByFloat(func(p models.Product) float64 { return p.Price }, true)
	case "price-high":
		return listing.ByFloat(func(p models.Product) float64 { return p.Price }, false)
	case "stock":
		return listing.ByInt(func(p models.Product) int { return p.Stock }, false)
	default: // newest
		return func(a, b models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
}
