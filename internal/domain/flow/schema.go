package flow

import "sort"

// Type names a JSON value type in an output schema.
type Type string

const (
	TypeObject Type = "object"
	TypeArray  Type = "array"
	TypeString Type = "string"
)

// Schema is the provider-neutral description of a flow's output record.
// Provider adapters translate it into their native structured output format.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
}

// String describes a string value.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// ArrayOf describes a list of items.
func ArrayOf(items *Schema, description string) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: items}
}

// Object describes a record whose properties are all required.
func Object(description string, properties map[string]*Schema) *Schema {
	s := &Schema{Type: TypeObject, Description: description, Properties: properties}
	s.Required = s.PropertyNames()
	return s
}

// PropertyNames returns the property keys in a stable order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JSONSchema renders the schema as a strict JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Type {
	case TypeObject:
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		required := s.Required
		if required == nil {
			required = []string{}
		}
		out["required"] = required
		out["additionalProperties"] = false
	case TypeArray:
		out["items"] = s.Items.JSONSchema()
	}
	return out
}
