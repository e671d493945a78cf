package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type HealthArticle struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Excerpt     string         `json:"excerpt"`
	Content     string         `gorm:"type:TEXT" json:"content"`
	Author      string         `json:"author"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Tags        string         `json:"-"` // comma separated in the DB
	ReadTime    int            `json:"read_time"` // minutes
	Likes       int            `json:"likes"`
	Views       int            `json:"views"`
	PublishedAt time.Time      `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TagList splits the stored comma-separated tags.
func (a *HealthArticle) TagList() []string {
	if a.Tags == "" {
		return nil
	}
	parts := strings.Split(a.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SetTags stores a tag slice as comma-separated text.
func (a *HealthArticle) SetTags(tags []string) {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	a.Tags = strings.Join(clean, ",")
}
