package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// SchemaValidator checks decoded model output against the same schema the
// model was asked to honour.
type SchemaValidator struct {
	operation string
	schema    *gojsonschema.Schema
}

func NewSchemaValidator(operation string, schema *genai.Schema) (*SchemaValidator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(ToJSONSchema(schema)))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", operation, err)
	}

	return &SchemaValidator{
		operation: operation,
		schema:    compiled,
	}, nil
}

// Validate returns a *SchemaViolationError listing every mismatch in doc.
func (v *SchemaValidator) Validate(doc any) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &ParseError{Message: "failed to load model output for validation", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	violation := &SchemaViolationError{
		Operation: v.operation,
		Errors:    make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		violation.Errors = append(violation.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}

	return violation
}

// ToJSONSchema converts a genai response schema into a draft-07 JSON Schema document.
func ToJSONSchema(s *genai.Schema) map[string]any {
	out := map[string]any{}
	if s == nil {
		return out
	}

	if s.Type != "" && s.Type != genai.TypeUnspecified {
		out["type"] = strings.ToLower(string(s.Type))
	}

	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}

	if s.Items != nil {
		out["items"] = ToJSONSchema(s.Items)
	}

	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = ToJSONSchema(prop)
		}
		out["properties"] = props
	}

	if len(s.Required) > 0 {
		out["required"] = s.Required
	}

	return out
}
