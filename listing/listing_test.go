package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type product struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
}

var catalog = []product{
	{Name: "Paracetamol 500mg", Description: "Giảm đau, hạ sốt", Category: "Thuốc không kê đơn", Price: 25000, Stock: 120},
	{Name: "Vitamin C 1000mg", Description: "Tăng sức đề kháng", Category: "Vitamin & Khoáng chất", Price: 95000, Stock: 40},
	{Name: "Amoxicillin 250mg", Description: "Kháng sinh phổ rộng", Category: "Thuốc kê đơn", Price: 48000, Stock: 0},
	{Name: "Nhiệt kế điện tử", Description: "Đo thân nhiệt nhanh", Category: "Thiết bị y tế", Price: 150000, Stock: 15},
	{Name: "paracetamol extra", Description: "Phối hợp caffeine", Category: "Thuốc không kê đơn", Price: 32000, Stock: 60},
}

func searchFields() []func(product) string {
	return []func(product) string{
		func(p product) string { return p.Name },
		func(p product) string { return p.Description },
	}
}

func TestApplySearch(t *testing.T) {
	cases := []struct {
		name     string
		search   string
		expected []string
	}{
		{
			name:     "empty search returns everything",
			search:   "",
			expected: []string{"Paracetamol 500mg", "Vitamin C 1000mg", "Amoxicillin 250mg", "Nhiệt kế điện tử", "paracetamol extra"},
		},
		{
			name:     "case insensitive name match",
			search:   "PARACETAMOL",
			expected: []string{"Paracetamol 500mg", "paracetamol extra"},
		},
		{
			name:     "matches description too",
			search:   "kháng sinh",
			expected: []string{"Amoxicillin 250mg"},
		},
		{
			name:     "no match yields empty result",
			search:   "insulin",
			expected: []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Apply(catalog, Query[product]{Search: c.search, SearchFields: searchFields()})
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, c.expected, names)
		})
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	q := Query[product]{
		Matches: []Match[product]{{Value: "Thuốc không kê đơn", Field: func(p product) string { return p.Category }}},
	}
	got := Apply(catalog, q)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "Thuốc không kê đơn", p.Category)
	}
}

func TestApplyWildcardLeavesInputUnchanged(t *testing.T) {
	for _, sentinel := range []string{"all", "Tất cả", "tất cả", ""} {
		q := Query[product]{
			Matches: []Match[product]{{Value: sentinel, Field: func(p product) string { return p.Category }}},
		}
		got := Apply(catalog, q)
		assert.Equal(t, catalog, got, "sentinel %q must not filter", sentinel)
	}
}

func TestApplyPriceRange(t *testing.T) {
	q := Query[product]{
		Ranges: []Range[product]{{Min: 30000, Max: 100000, Field: func(p product) float64 { return p.Price }}},
	}
	got := Apply(catalog, q)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, 30000.0)
		assert.LessOrEqual(t, p.Price, 100000.0)
	}
	assert.Len(t, got, 3)
}

func TestApplyRangeBoundsAreInclusive(t *testing.T) {
	q := Query[product]{
		Ranges: []Range[product]{{Min: 25000, Max: 25000, Field: func(p product) float64 { return p.Price }}},
	}
	got := Apply(catalog, q)
	assert.Len(t, got, 1)
	assert.Equal(t, "Paracetamol 500mg", got[0].Name)
}

func TestSortPriceLowHighAreReversed(t *testing.T) {
	price := func(p product) float64 { return p.Price }

	asc := Apply(catalog, Query[product]{Less: ByFloat(price, true)})
	desc := Apply(catalog, Query[product]{Less: ByFloat(price, false)})

	assert.Len(t, asc, len(catalog))
	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	tied := []product{
		{Name: "b", Price: 10},
		{Name: "a", Price: 10},
		{Name: "c", Price: 5},
	}
	got := Apply(tied, Query[product]{Less: ByFloat(func(p product) float64 { return p.Price }, true)})
	// c first, then b and a keep their input order
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSortByNameAndStock(t *testing.T) {
	byName := Apply(catalog, Query[product]{Less: ByString(func(p product) string { return p.Name }, true)})
	assert.Equal(t, "Amoxicillin 250mg", byName[0].Name)

	byStock := Apply(catalog, Query[product]{Less: ByInt(func(p product) int { return p.Stock }, false)})
	assert.Equal(t, 120, byStock[0].Stock)
	assert.Equal(t, 0, byStock[len(byStock)-1].Stock)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	original := make([]product, len(catalog))
	copy(original, catalog)

	_ = Apply(catalog, Query[product]{
		Search:       "para",
		SearchFields: searchFields(),
		Less:         ByFloat(func(p product) float64 { return p.Price }, false),
	})
	assert.Equal(t, original, catalog)
}

func TestIsWildcard(t *testing.T) {
	cases := []struct {
		value    string
		wildcard bool
	}{
		{"all", true},
		{"All", true},
		{"Tất cả", true},
		{"  all  ", true},
		{"", true},
		{"Thuốc kê đơn", false},
		{"pending", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.wildcard, IsWildcard(c.value), "value %q", c.value)
	}
}
