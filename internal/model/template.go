package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Field types accepted in template field definitions.
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeSelect   = "select"
	FieldTypeDate     = "date"
	FieldTypeNumber   = "number"
)

// FieldDef describes one piece of user input a template needs. Immutable once
// part of a template.
type FieldDef struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"` // select only
}

// FieldDefs is stored as a JSON text column so the ordered field list travels
// with the template row.
type FieldDefs []FieldDef

func (f FieldDefs) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *FieldDefs) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into FieldDefs", value)
	}
}

// Template is a reusable document skeleton. Created out-of-band, read-only to
// the generation pipeline.
type Template struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1000"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Fields      FieldDefs `json:"fields" gorm:"type:text"`
	Body        string    `json:"body" gorm:"type:text"`
	IsSystem    bool      `json:"is_system" gorm:"default:false"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Template) TableName() string {
	return "document_templates"
}
