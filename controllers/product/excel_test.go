package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

func TestImportColumnsWriteZeroValues(t *testing.T) {
	cols := importColumns(models.Product{Name: "Paracetamol 500mg"})

	assert.Equal(t, "Paracetamol 500mg", cols["name"])
	assert.Equal(t, 0, cols["stock"])
	assert.Equal(t, 0.0, cols["price"])
	assert.Equal(t, false, cols["prescription"])
	assert.Equal(t, uint(0), cols["category_id"])
	assert.Len(t, cols, 10)
}

func TestImportColumnsCarryAllParsedFields(t *testing.T) {
	p := models.Product{
		Name:          "Vitamin C 1000mg",
		Description:   "Tăng sức đề kháng",
		Price:         95000,
		OriginalPrice: 120000,
		Stock:         40,
		Prescription:  false,
		CategoryID:    3,
		Manufacturer:  "DHG Pharma",
		Origin:        "Việt Nam",
		Image:         "/uploads/products/vitamin-c.jpg",
	}
	cols := importColumns(p)

	assert.Equal(t, p.Description, cols["description"])
	assert.Equal(t, p.OriginalPrice, cols["original_price"])
	assert.Equal(t, p.Stock, cols["stock"])
	assert.Equal(t, p.CategoryID, cols["category_id"])
	assert.Equal(t, p.Manufacturer, cols["manufacturer"])
	assert.Equal(t, p.Origin, cols["origin"])
	assert.Equal(t, p.Image, cols["image"])
}
