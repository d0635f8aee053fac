// Package validation checks request bodies against JSON Schema documents
// before they are decoded into domain types.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"formportal/internal/apperr"
	"formportal/internal/model"
)

// formSchemaDocument describes the body accepted by the register endpoint.
// Timestamps and unknown keys are tolerated and ignored on decode.
const formSchemaDocument = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "fields"],
  "properties": {
    "id":          {"type": ["string", "null"], "format": "uuid"},
    "name":        {"type": "string"},
    "description": {"type": ["string", "null"]},
    "fields": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "label", "field_type", "required"],
        "properties": {
          "id":          {"type": "string"},
          "label":       {"type": "string"},
          "field_type":  {"enum": %s},
          "required":    {"type": "boolean"},
          "placeholder": {"type": ["string", "null"]},
          "validation":  {"type": ["string", "null"]},
          "options": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["value", "label"],
              "properties": {
                "value": {"type": "string"},
                "label": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// Validator validates raw JSON bodies. It is safe for concurrent use.
type Validator struct {
	formSchema *gojsonschema.Schema
}

// New compiles the embedded JSON Schema documents.
func New() (*Validator, error) {
	types := make([]string, len(model.FieldTypes))
	for i, ft := range model.FieldTypes {
		types[i] = fmt.Sprintf("%q", ft)
	}
	doc := fmt.Sprintf(formSchemaDocument, "["+strings.Join(types, ", ")+"]")

	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("compile form schema document: %w", err)
	}
	return &Validator{formSchema: s}, nil
}

// FormSchema validates a register-schema request body. Malformed JSON and
// schema violations are both reported as BadRequest.
func (v *Validator) FormSchema(body []byte) error {
	result, err := v.formSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperr.BadRequest("invalid JSON body: %v", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return apperr.BadRequest("invalid form schema: %s", strings.Join(errs, "; "))
}
