package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/cache"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

// importColumns maps a parsed row to an explicit update set. A plain
// struct update would skip zero values, silently ignoring cells like
// stock 0 on re-import; the sheet is authoritative, so every imported
// column is written.
func importColumns(p models.Product) map[string]interface{} {
	return map[string]interface{}{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"original_price": p.OriginalPrice,
		"stock":          p.Stock,
		"prescription":   p.Prescription,
		"category_id":    p.CategoryID,
		"manufacturer":   p.Manufacturer,
		"origin":         p.Origin,
		"image":          p.Image,
	}
}

// ImportProductsFromExcel bulk creates or updates catalog entries from an
// uploaded sheet. Columns: ID, Name, Description, Price, OriginalPrice,
// Stock, Prescription, CategoryID, Manufacturer, Origin, Image.
func ImportProductsFromExcel(db *gorm.DB, rc *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, errPrice := strconv.ParseFloat(get(3), 64)
			originalPrice, _ := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.Atoi(get(5))
			prescription, _ := strconv.ParseBool(get(6))
			categoryID, _ := strconv.ParseUint(get(7), 10, 64)

			if name == "" || errPrice != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Description:   description,
				Price:         price,
				OriginalPrice: originalPrice,
				Stock:         stock,
				Prescription:  prescription,
				CategoryID:    uint(categoryID),
				Manufacturer:  get(8),
				Origin:        get(9),
				Image:         get(10),
			}

			if idStr != "" {
				if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
					var existing models.Product
					if db.First(&existing, uint(id)).Error == nil {
						if err := db.Model(&existing).Updates(importColumns(product)).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		rc.Invalidate(c.Request.Context(), productCacheKey)

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

// ExportProductsToExcel streams the full catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "OriginalPrice",
			"Stock", "Prescription", "CategoryID", "Manufacturer", "Origin",
			"Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(strconv.FormatBool(p.Prescription))
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Manufacturer)
			row.AddCell().SetValue(p.Origin)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
