package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage belongs to the community chat room shared by all users
type ChatMessage struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	UserName     string    `json:"user_name"`
	UserImageURL string    `json:"user_image_url,omitempty"`
	Text         string    `json:"text" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// StatusObject is a chef's ephemeral story post (image or short video)
type StatusObject struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ChefID    string    `json:"chef_id" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null;default:'image'"` // "image" or "video"
	ImageURL  string    `json:"image_url" gorm:"not null"`            // data URI or hosted URL
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *StatusObject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type StatusReaction struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	StatusID     string    `json:"status_id" gorm:"not null;index"`
	UserID       string    `json:"user_id" gorm:"not null"`
	UserName     string    `json:"user_name"`
	UserImageURL string    `json:"user_image_url,omitempty"`
	Emoji        string    `json:"emoji,omitempty"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *StatusReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ViewedStatus struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	StatusID  string    `json:"status_id" gorm:"not null;index"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *ViewedStatus) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
