package tool

import (
	"github.com/invopop/jsonschema"
)

// SchemaFromStruct produces a JSON Schema map from a Go struct using
// reflection. Struct tags (json, jsonschema) drive the derived schema.
func SchemaFromStruct(structType any) map[string]any {
	s := jsonschema.Reflect(structType)
	root := extractRoot(s)

	schema := map[string]any{"type": "object"}
	if props := schemaProperties(root); props != nil {
		schema["properties"] = props
	}

	if len(root.Required) > 0 {
		schema["required"] = root.Required
	}

	return schema
}

// extractRoot resolves the root schema, following $ref to $defs if needed.
func extractRoot(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Ref != "" && s.Definitions != nil {
		// invopop/jsonschema puts the actual type under $defs with a ref
		// like "#/$defs/TypeName".
		for _, def := range s.Definitions {
			if def.Type == "object" {
				return def
			}
		}
	}

	return s
}

// schemaProperties converts an ordered map of properties into a plain
// map[string]any suitable for provider APIs.
func schemaProperties(s *jsonschema.Schema) map[string]any {
	if s.Properties == nil {
		return nil
	}

	props := make(map[string]any)
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		props[pair.Key] = propertySchema(pair.Value)
	}

	return props
}

// propertySchema converts a single property schema to a serializable map.
func propertySchema(s *jsonschema.Schema) map[string]any {
	m := make(map[string]any)

	if s.Type != "" {
		m["type"] = s.Type
	}

	if s.Description != "" {
		m["description"] = s.Description
	}

	if s.Default != nil {
		m["default"] = s.Default
	}

	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}

	// Pointer types surface as anyOf with a null branch.
	if len(s.AnyOf) > 0 {
		for _, sub := range s.AnyOf {
			if sub.Type != "null" && sub.Type != "" {
				m["type"] = sub.Type
				break
			}
		}
	}

	// Nested object properties
	if s.Properties != nil {
		m["type"] = "object"
		m["properties"] = schemaProperties(s)

		if len(s.Required) > 0 {
			m["required"] = s.Required
		}
	}

	// Array items
	if s.Items != nil {
		m["items"] = propertySchema(s.Items)
	}

	return m
}
