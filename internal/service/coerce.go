package service

import (
	"errors"
	"math"
	"strconv"

	"formportal/internal/model"
)

// Coerce converts raw form-encoded values into the typed values stored
// for a response. Coercion never fails:
//   - keys without a matching field are dropped
//   - Number: "" becomes nil, a float parses to float64 (nil when NaN or
//     infinite, including overflow such as "1e400"), anything else stays a string
//   - Checkbox: "on" becomes true, anything else stays a string
//   - every other type keeps the raw string, including ""
func Coerce(schema *model.FormSchema, raw map[string]string) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		field, ok := schema.Field(key)
		if !ok {
			continue
		}
		out[key] = coerce(field.FieldType, value)
	}
	return out
}

func coerce(t model.FieldType, value string) any {
	switch t {
	case model.FieldNumber:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return value
		}
		// NaN and ±Inf have no JSON encoding.
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return n
	case model.FieldCheckbox:
		if value == "on" {
			return true
		}
		return value
	default:
		return value
	}
}
