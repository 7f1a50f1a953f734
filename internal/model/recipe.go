package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the single persisted entity. Records are create/read/delete
// only; there is no update path and no soft delete.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description *string          `gorm:"type:text" json:"description"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
}

// BeforeCreate assigns the identifier and creation time client-side so
// inserts work the same on every dialect, sqlite included.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}
