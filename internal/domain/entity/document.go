package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kbhatta/quotify-api/internal/domain/enum"
)

// LineItem is one row of a document snapshot. Rate, Amount and Stock
// are frozen at save time; they are never re-derived from the catalog
// after persistence.
type LineItem struct {
	Item   string  `json:"item"`
	Rate   float64 `json:"rate"`
	Qty    int     `json:"qty"`
	Amount float64 `json:"amount"`
	Stock  int     `json:"stock"`
}

// LineItems is the JSON-encoded snapshot column of a document.
type LineItems []LineItem

// Value implements driver.Valuer for JSON column storage
func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSON column storage
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for LineItems", value)
	}
}

// Document is a finalized quotation or bill. CustomerName and Items are
// denormalized snapshots, not foreign keys: later catalog edits leave a
// saved document untouched. UpdatedAt is managed by the service and set
// only when a document is explicitly re-saved.
type Document struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Kind         enum.DocumentKind `gorm:"size:20;not null;index" json:"kind"`
	CustomerName string            `gorm:"size:255;not null" json:"customer_name"`
	Items        LineItems         `gorm:"type:jsonb" json:"items"`
	Total        float64           `gorm:"type:decimal(15,2);default:0" json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    *time.Time        `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
