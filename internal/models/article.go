package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id" example:"7d9f3c1e-3b0a-4c55-9a57-1f2e9c6a0b11"`
	Title          string    `gorm:"not null" json:"title" example:"Town hall reopens after renovation"`
	Slug           string    `gorm:"size:255;not null;uniqueIndex" json:"slug" example:"town-hall-reopens-after-renovation"`
	Content        string    `gorm:"type:text;not null" json:"content" example:"First paragraph.\nSecond paragraph."`
	Image          *string   `gorm:"type:text" json:"image,omitempty" example:"data:image/png;base64,iVBORw0KGgo="`
	YoutubeVideoID *string   `gorm:"column:youtube_video_id;size:11" json:"youtubeVideoId,omitempty" example:"dQw4w9WgXcQ"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" example:"2024-01-01T00:00:00Z"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
