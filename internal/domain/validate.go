package domain

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ValidateArguments checks raw tool-call arguments against a declared input
// schema and returns the validated bag. Validation is pure: it performs no
// I/O and never mutates the raw map.
//
// The check is all-or-nothing. Every violation is collected and returned in
// a single *ValidationError, and on any violation no arguments are returned.
// Per declared field the rules are:
//   - absent and required: violation
//   - absent with a declared default: the default is applied
//   - absent otherwise: the field stays absent
//   - explicit null: violation (null never triggers the default)
//   - wrong JSON type: violation ("integer" also rejects fractional numbers)
//   - enum and bound keywords are enforced on the typed value
//
// Keys the schema does not declare are dropped silently, so callers that
// over-supply arguments still validate.
func ValidateArguments(schema JSONSchemaProps, raw map[string]any) (Arguments, error) {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	// Walk fields in sorted order so aggregated violations are deterministic.
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make(Arguments, len(names))
	var violations []Violation
	for _, name := range names {
		prop := schema.Properties[name]
		value, present := raw[name]

		if !present {
			if required[name] {
				violations = append(violations, Violation{Field: name, Message: "is required"})
			} else if prop.Default != nil {
				out[name] = prop.Default
			}
			continue
		}
		if value == nil {
			violations = append(violations, Violation{Field: name, Message: "must not be null"})
			continue
		}

		typed, msg := checkValue(prop, value)
		if msg != "" {
			violations = append(violations, Violation{Field: name, Message: msg})
			continue
		}
		out[name] = typed
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return out, nil
}

// checkValue type-checks one present value against its schema and returns the
// typed value, or a violation message. Integers arrive from JSON as float64
// and are narrowed to int here.
func checkValue(prop JSONSchemaProps, value any) (any, string) {
	switch prop.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return nil, "must be a string"
		}
		if len(prop.Enum) > 0 && !slices.Contains(prop.Enum, s) {
			return nil, "must be one of: " + strings.Join(prop.Enum, ", ")
		}
		return s, ""
	case "integer":
		f, ok := numericValue(value)
		if !ok || math.Trunc(f) != f {
			return nil, "must be an integer"
		}
		if msg := checkBounds(prop, f); msg != "" {
			return nil, msg
		}
		return int(f), ""
	case "number":
		f, ok := numericValue(value)
		if !ok {
			return nil, "must be a number"
		}
		if msg := checkBounds(prop, f); msg != "" {
			return nil, msg
		}
		return f, ""
	case "boolean":
		b, ok := value.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return b, ""
	}
	return nil, fmt.Sprintf("has unsupported schema type %q", prop.Type)
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func checkBounds(prop JSONSchemaProps, v float64) string {
	if prop.Minimum != nil && v < *prop.Minimum {
		return "must be at least " + strconv.FormatFloat(*prop.Minimum, 'f', -1, 64)
	}
	if prop.Maximum != nil && v > *prop.Maximum {
		return "must be at most " + strconv.FormatFloat(*prop.Maximum, 'f', -1, 64)
	}
	return ""
}
