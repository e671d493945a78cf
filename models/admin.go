package models

import "time"

// Admin is a dashboard account pending or holding super-admin approval.
// ApprovedAt stays nil until the super admin approves the registration.
type Admin struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Email      string     `gorm:"unique" json:"email"`
	Name       string     `json:"name"`
	Picture    string     `json:"picture"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
