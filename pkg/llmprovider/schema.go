package llmprovider

import (
	"encoding/json"
	"strings"
)

// Schema types, in the upper-case OpenAPI dialect Gemini expects.
const (
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeArray   = "ARRAY"
	TypeInteger = "INTEGER"
	TypeNumber  = "NUMBER"
	TypeBoolean = "BOOLEAN"
)

// Schema describes the structured output expected from a model. It marshals
// directly into Gemini's responseSchema.
type Schema struct {
	Type             string             `json:"type"`
	Format           string             `json:"format,omitempty"`
	Description      string             `json:"description,omitempty"`
	Enum             []string           `json:"enum,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

// ToJSONSchema converts s into a standard JSON Schema document.
func (s *Schema) ToJSONSchema() map[string]any {
	if s == nil {
		return map[string]any{}
	}

	out := map[string]any{"type": strings.ToLower(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		enum := make([]any, len(s.Enum))
		for i, v := range s.Enum {
			enum[i] = v
		}
		out["enum"] = enum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.ToJSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		req := make([]any, len(s.Required))
		for i, v := range s.Required {
			req[i] = v
		}
		out["required"] = req
	}
	if s.Items != nil {
		out["items"] = s.Items.ToJSONSchema()
	}
	return out
}

// String renders the JSON Schema form, used in prompts for providers
// without native schema support.
func (s *Schema) String() string {
	b, err := json.Marshal(s.ToJSONSchema())
	if err != nil {
		return "{}"
	}
	return string(b)
}
