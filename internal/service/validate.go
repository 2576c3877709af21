package service

import (
	"slices"
	"strings"

	"github.com/nyayaai/backend/internal/model"
)

// Violation describes one field that failed validation.
type Violation struct {
	FieldID string `json:"field_id"`
	Label   string `json:"label"`
	Reason  string `json:"reason"`
}

// Validate checks form values against the template's field definitions. It is
// the single validation authority: handlers call it before rendering a draft
// and again before persisting, so skipping the form UI cannot bypass required
// fields. Returns the violated fields, empty when the values are acceptable.
func Validate(fields model.FieldDefs, values model.FormData) []Violation {
	var violations []Violation
	for _, field := range fields {
		value := strings.TrimSpace(values[field.ID])

		if field.Required && value == "" {
			violations = append(violations, Violation{
				FieldID: field.ID,
				Label:   field.Label,
				Reason:  "required",
			})
			continue
		}

		if value == "" {
			continue
		}

		if field.Type == model.FieldTypeSelect && !slices.Contains(field.Options, value) {
			violations = append(violations, Violation{
				FieldID: field.ID,
				Label:   field.Label,
				Reason:  "not an allowed option",
			})
		}
	}
	return violations
}
