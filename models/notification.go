package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is addressed to a single recipient. Title and message are
// i18n keys resolved by the client, with Params filled into the template.
type Notification struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	RecipientID string         `json:"recipient_id" gorm:"not null;index"`
	TitleKey    string         `json:"title_key" gorm:"not null"`
	MessageKey  string         `json:"message_key" gorm:"not null"`
	Params      map[string]any `json:"params,omitempty" gorm:"serializer:json"`
	Link        string         `json:"link"`
	IsRead      bool           `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
