package types

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const inspectedElementSchemaFile = "inspected_element.schema.json"

// InspectedElementSchema is the JSON schema of an inspectedElement payload.
const InspectedElementSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": ["object", "null"],
  "required": ["id"],
  "properties": {
    "id": {"type": "integer", "minimum": 0},
    "source": {
      "type": ["object", "null"],
      "properties": {
        "fileName": {"type": "string"},
        "lineNumber": {"type": "integer"}
      }
    },
    "owners": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "displayName": {"type": "string"}
        }
      }
    },
    "context": {"$ref": "#/$defs/dehydrated"},
    "hooks": {"$ref": "#/$defs/dehydrated"},
    "props": {"$ref": "#/$defs/dehydrated"},
    "state": {"$ref": "#/$defs/dehydrated"}
  },
  "$defs": {
    "dehydrated": {
      "type": ["object", "null"],
      "required": ["data"],
      "properties": {
        "data": true,
        "cleaned": {
          "type": ["array", "null"],
          "items": {
            "type": "array",
            "items": {"type": ["string", "integer"]}
          }
        }
      }
    }
  }
}`

var inspectedElementSchema = jsonschema.MustCompileString(inspectedElementSchemaFile, InspectedElementSchema)

// ValidateInspectedElement checks that data is a well-formed inspectedElement payload.
func ValidateInspectedElement(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal inspected element: %w", err)
	}
	if err := inspectedElementSchema.Validate(v); err != nil {
		return fmt.Errorf("validate inspected element: %w", err)
	}
	return nil
}
