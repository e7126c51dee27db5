package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidationError reports a single schema violation in a tool's raw arguments.
// Its message names the offending field so the caller can self-correct.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// ValidateInput checks raw arguments against the schema and returns the
// parsed argument map. The contract:
//
//   - keys not declared in Properties are ignored,
//   - a required field without a default must be present,
//   - integer fields accept JSON numbers only when integral, and must satisfy
//     the declared minimum,
//   - absent optional fields take their declared default.
//
// Integer values come back as int64 regardless of how they arrived.
func (s JSONSchemaProps) ValidateInput(raw map[string]any) (map[string]any, error) {
	for _, name := range s.Required {
		if _, ok := raw[name]; ok {
			continue
		}
		if prop, ok := s.Properties[name]; ok && prop.Default != nil {
			continue
		}
		return nil, &ValidationError{Field: name, Reason: "required field is missing"}
	}

	args := make(map[string]any, len(s.Properties))
	for name, prop := range s.Properties {
		value, present := raw[name]
		if !present {
			if prop.Default == nil {
				continue
			}
			value = prop.Default
		}

		switch prop.Type {
		case "string":
			str, ok := value.(string)
			if !ok {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("expected a string, got %T", value)}
			}
			args[name] = str
		case "integer":
			n, ok := coerceInt(value)
			if !ok {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("expected an integer, got %v", value)}
			}
			if prop.Minimum != nil && float64(n) < *prop.Minimum {
				return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("must be at least %d", int64(*prop.Minimum))}
			}
			args[name] = n
		default:
			return nil, &ValidationError{Field: name, Reason: fmt.Sprintf("unsupported schema type %q", prop.Type)}
		}
	}
	return args, nil
}

// coerceInt converts the JSON decoder's number representations to int64.
// Floats pass only when they carry no fractional part.
func coerceInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
