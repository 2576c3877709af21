package service

import (
	"regexp"
	"strings"

	"github.com/nyayaai/backend/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Render fills a template body with form values. For every field definition
// the literal token {field_id} is replaced globally, with the bracketed field
// label standing in when the value is absent or blank. Tokens without a
// matching field definition are left verbatim. Pure and deterministic: the
// same inputs always produce the same output.
func Render(body string, fields model.FieldDefs, values model.FormData) string {
	out := body
	for _, field := range fields {
		value := values[field.ID]
		if value == "" {
			value = "[" + field.Label + "]"
		}
		out = strings.ReplaceAll(out, "{"+field.ID+"}", value)
	}
	return out
}

// UnmatchedTokens reports placeholder tokens in the body that have no field
// definition. Unmatched tokens are not an error at render time; this exists so
// template authoring problems can be logged when templates are loaded.
func UnmatchedTokens(body string, fields model.FieldDefs) []string {
	known := make(map[string]bool, len(fields))
	for _, field := range fields {
		known[field.ID] = true
	}

	var unmatched []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		id := match[1]
		if !known[id] && !seen[id] {
			unmatched = append(unmatched, id)
			seen[id] = true
		}
	}
	return unmatched
}
