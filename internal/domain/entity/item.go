package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a catalog item available for quotation and billing.
// Stock is deliberately unclamped: a bill that oversells drives it
// negative, matching the behaviour the shop runs on today.
type Item struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Rate      float64        `gorm:"type:decimal(15,2);default:0" json:"rate"`
	Stock     int            `gorm:"default:0" json:"stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
