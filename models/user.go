package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User ID is the Firebase uid for Google sign-ins or a generated uuid for
// local email/password accounts.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Picture      string    `json:"picture"`
	Role         Role      `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Provider     string    `json:"provider"` // "google" or "password"
	PasswordHash string    `json:"-"`
	Address      Address   `gorm:"embedded" json:"address"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// Address model embedded in User
type Address struct {
	Street   string `json:"street"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	City     string `json:"city"`
}
