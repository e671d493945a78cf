package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Description   string   `json:"description"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	CategoryID    uint     `gorm:"index" json:"category_id"`
	Category      Category `gorm:"foreignKey:CategoryID" json:"category"`
	Stock         int      `json:"stock"`
	Prescription  bool     `json:"prescription"` // requires a doctor's prescription
	Rating        float64  `json:"rating"`
	Reviews       []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews"`

	// Pharmaceutical details, all optional free text
	Manufacturer      string `json:"manufacturer"`
	Origin            string `json:"origin"`
	Expiry            string `json:"expiry"`
	Packaging         string `json:"packaging"`
	Ingredients       string `json:"ingredients"`
	Storage           string `json:"storage"`
	Dosage            string `json:"dosage"`
	Usage             string `json:"usage"`
	Target            string `json:"target"`
	SideEffects       string `json:"side_effects"`
	Contraindications string `json:"contraindications"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
