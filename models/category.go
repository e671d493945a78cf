package models

// Category is referenced from Product by ID. The product count is not
// stored; list endpoints compute it with a join so it can never drift
// out of sync.
type Category struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"unique;not null" json:"name"`
	Icon           string `json:"icon"`
	Description    string `json:"description"`
	IsPrescription bool   `json:"is_prescription"`
}

// CategoryWithCount is the list-view shape: a category plus its live
// product count.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"product_count"`
}
