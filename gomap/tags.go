package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// ParseStructTag parses a struct tag string and returns a map of key-value
// pairs. Handles comma-separated values: `gomap:"field=name,omit"`.
// Values may be quoted to carry spaces: `gomap:"field='a b'"`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(value)
		} else {
			result[part] = ""
		}
	}
	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		if (value[0] == '\'' && value[len(value)-1] == '\'') ||
			(value[0] == '"' && value[len(value)-1] == '"') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// fieldName returns the object field name for a struct field, honoring the
// gomap tag: `gomap:"-"` and `gomap:"omit"` skip the field,
// `gomap:"field=name"` renames it.
func fieldName(field reflect.StructField) (name string, skip bool) {
	name = field.Name
	tag := field.Tag.Get("gomap")
	if tag == "" {
		return name, false
	}
	if tag == "-" {
		return "", true
	}
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return name, false
	}
	if _, ok := parsed["omit"]; ok {
		return "", true
	}
	if renamed, ok := parsed["field"]; ok && renamed != "" && renamed != "-" {
		name = renamed
	}
	return name, false
}
