package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FormData is the flat field-id -> value snapshot captured at generation time.
// Unset fields are absent keys, never empty entries. Stored as a JSON text
// column alongside the document.
type FormData map[string]string

func (d FormData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (d *FormData) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into FormData", value)
	}
}

// Document is a generated (and possibly AI-enhanced) document owned by one
// user. Content is immutable after creation; regeneration inserts a new row.
type Document struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OwnerID    string    `json:"owner_id" gorm:"size:64;index;not null"`
	TemplateID uint      `json:"template_id" gorm:"index"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text"`
	FormData   FormData  `json:"form_data" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Document) TableName() string {
	return "generated_documents"
}
