package router

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/strategize/pathway/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// templateSchema is the wire-level contract for catalog entries. Keeping the
// check at the JSON layer catches tag drift between the structs and what
// clients actually receive.
const templateSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "type", "category", "name", "description", "phases"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"type": {"type": "string", "minLength": 1},
		"category": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 3},
		"description": {"type": "string", "minLength": 1},
		"difficulty": {"type": "string"},
		"estimated_duration": {"type": "string"},
		"phases": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "name", "order"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"order": {"type": "integer", "minimum": 0},
					"system_guidance": {"type": "string"},
					"user_guidance": {"type": "string"},
					"expected_outputs": {"type": "array", "items": {"type": "string"}},
					"validation_rules": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["type", "field", "message"],
							"properties": {
								"type": {"enum": ["required", "minLength", "pattern", "custom"]},
								"field": {"type": "string", "minLength": 1},
								"message": {"type": "string", "minLength": 1}
							}
						}
					}
				}
			}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(templateSchema)

// validateTemplateSchema marshals the template and validates the resulting
// document against the catalog schema.
func validateTemplateSchema(template *models.PathwayTemplate) error {
	payload, err := json.Marshal(template)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return fmt.Errorf("template does not conform to schema: %s", strings.Join(details, "; "))
	}

	return nil
}
