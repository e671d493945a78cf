package models

// Doctor rows are seeded at startup and editable through the admin surface.
type Doctor struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	Specialty  string  `json:"specialty"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	Experience int     `json:"experience"` // years of practice
	Available  bool    `gorm:"default:true" json:"available"`
}
