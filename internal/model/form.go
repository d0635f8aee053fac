package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FieldType enumerates the input kinds a form field can take.
type FieldType string

const (
	FieldText     FieldType = "Text"
	FieldNumber   FieldType = "Number"
	FieldEmail    FieldType = "Email"
	FieldDate     FieldType = "Date"
	FieldCheckbox FieldType = "Checkbox"
	FieldSelect   FieldType = "Select"
	FieldRadio    FieldType = "Radio"
	FieldTextarea FieldType = "Textarea"
)

// FieldTypes lists every supported FieldType in declaration order.
var FieldTypes = []FieldType{
	FieldText, FieldNumber, FieldEmail, FieldDate,
	FieldCheckbox, FieldSelect, FieldRadio, FieldTextarea,
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown field types at decode time.
func (t *FieldType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ft := FieldType(s)
	if !ft.Valid() {
		return fmt.Errorf("unknown field type %q", s)
	}
	*t = ft
	return nil
}

// FieldOption is a value/label pair offered by Select, Checkbox and Radio fields.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormField is one typed input slot within a schema.
// Validation is stored verbatim and never evaluated.
type FormField struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	FieldType   FieldType     `json:"field_type"`
	Required    bool          `json:"required"`
	Placeholder *string       `json:"placeholder"`
	Options     []FieldOption `json:"options"`
	Validation  *string       `json:"validation"`
}

// FormSchema is a registered form definition. The order of Fields is preserved
// from registration through storage and rendering.
type FormSchema struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Fields      []FormField `json:"fields"`
	CreatedAt   *time.Time  `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at"`
}

// Field returns the field with the given id, if any.
func (s *FormSchema) Field(id string) (FormField, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}

// FormResponse is one stored submission. Data values are string, float64,
// bool or nil.
type FormResponse struct {
	ID        uuid.UUID      `json:"id"`
	FormID    uuid.UUID      `json:"form_id"`
	Data      map[string]any `json:"data"`
	CreatedAt *time.Time     `json:"created_at"`
}
