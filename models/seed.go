package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedDoctors inserts the consultation doctors if the table is empty.
func SeedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	doctors := []Doctor{
		{Name: "BS. Nguyễn Văn An", Specialty: "Nội tổng quát", Price: 200000, Rating: 4.8, Experience: 15},
		{Name: "BS. Trần Thị Bình", Specialty: "Nhi khoa", Price: 250000, Rating: 4.9, Experience: 12},
		{Name: "BS. Lê Minh Châu", Specialty: "Da liễu", Price: 300000, Rating: 4.7, Experience: 10},
		{Name: "BS. Phạm Quốc Dũng", Specialty: "Tim mạch", Price: 350000, Rating: 4.9, Experience: 20},
		{Name: "BS. Hoàng Thị Em", Specialty: "Dinh dưỡng", Price: 180000, Rating: 4.6, Experience: 8},
	}
	if err := db.Create(&doctors).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d doctors", len(doctors))
	return nil
}

// SeedCategories inserts the default catalog categories if none exist.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []Category{
		{Name: "Thuốc kê đơn", Icon: "💊", Description: "Thuốc cần đơn của bác sĩ", IsPrescription: true},
		{Name: "Thuốc không kê đơn", Icon: "🩹", Description: "Thuốc bán tự do"},
		{Name: "Vitamin & Khoáng chất", Icon: "🍊", Description: "Bổ sung vi chất"},
		{Name: "Chăm sóc cá nhân", Icon: "🧴", Description: "Sản phẩm vệ sinh, chăm sóc da"},
		{Name: "Thiết bị y tế", Icon: "🩺", Description: "Máy đo huyết áp, nhiệt kế..."},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d categories", len(categories))
	return nil
}
