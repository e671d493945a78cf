package models

import "time"

// Banner is a promotional image slot on the storefront home page.
type Banner struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `json:"title"`
	Image     string    `gorm:"not null" json:"image"`
	Link      string    `json:"link"` // target URL, e.g. a product or article page
	Position  int       `json:"position"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
