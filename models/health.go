package models

import "time"

// HealthProfile is the per-user record behind the profiles collection.
type HealthProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Height    float64   `json:"height"` // cm
	Weight    float64   `json:"weight"` // kg
	BloodType string    `json:"blood_type"`
	Allergies string    `json:"allergies"`
	Chronic   string    `json:"chronic"` // chronic conditions, free text
	UpdatedAt time.Time `json:"updated_at"`
}

type HealthGoal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Target    float64   `json:"target"`
	Unit      string    `json:"unit"` // kg, steps, bpm...
	Deadline  string    `gorm:"type:VARCHAR(10)" json:"deadline"` // YYYY-MM-DD
	Achieved  bool      `json:"achieved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Measurement struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	Type       string    `gorm:"not null" json:"type"` // weight, blood_pressure, heart_rate...
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recorded_at"`
}
