package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nyayaai/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSystemTemplatesAreWellFormed(t *testing.T) {
	tpls := SystemTemplates()
	assert.NotEmpty(t, tpls)
	assert.Equal(t, "rental-agreement", tpls[0].Slug, "default template must come first")

	slugs := make(map[string]bool)
	for _, tpl := range tpls {
		assert.False(t, slugs[tpl.Slug], "duplicate slug %s", tpl.Slug)
		slugs[tpl.Slug] = true

		assert.True(t, tpl.IsSystem, "%s must be a system template", tpl.Slug)
		assert.NotEmpty(t, tpl.Title, "%s needs a title", tpl.Slug)
		assert.NotEmpty(t, tpl.Category, "%s needs a category", tpl.Slug)
		assert.NotEmpty(t, tpl.Fields, "%s needs fields", tpl.Slug)
		assert.NotEmpty(t, tpl.Body, "%s needs a body", tpl.Slug)

		assert.Empty(t, UnmatchedTokens(tpl.Body, tpl.Fields),
			"%s body references undefined fields", tpl.Slug)
	}
}

func TestSystemTemplateFieldsAreWellFormed(t *testing.T) {
	validTypes := []string{
		model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeSelect,
		model.FieldTypeDate, model.FieldTypeNumber,
	}

	for _, tpl := range SystemTemplates() {
		ids := make(map[string]bool)
		for _, field := range tpl.Fields {
			assert.NotEmpty(t, field.ID, "%s has a field without an id", tpl.Slug)
			assert.NotEmpty(t, field.Label, "%s.%s needs a label", tpl.Slug, field.ID)
			assert.Contains(t, validTypes, field.Type, "%s.%s has unknown type", tpl.Slug, field.ID)
			assert.False(t, ids[field.ID], "%s has duplicate field %s", tpl.Slug, field.ID)
			ids[field.ID] = true

			if field.Type == model.FieldTypeSelect {
				assert.NotEmpty(t, field.Options, "%s.%s select needs options", tpl.Slug, field.ID)
			}

			token := fmt.Sprintf("{%s}", field.ID)
			assert.True(t, strings.Contains(tpl.Body, token),
				"%s defines %s but the body never uses it", tpl.Slug, field.ID)
		}
	}
}
