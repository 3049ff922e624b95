package dataview

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Record is one row of source data, opaque beyond named-field access.
// Field returns the value stored under key and whether the key exists.
// Implementations must not panic on unknown keys.
type Record interface {
	Field(key string) (any, bool)
}

// MapRecord adapts a plain map to the Record interface.
type MapRecord map[string]any

// Field looks the key up directly in the map.
func (m MapRecord) Field(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// StructRecord adapts a struct (or pointer to struct) to the Record
// interface using reflection. Field keys resolve against the `view` struct
// tag first, then the exported field name (case-insensitive). Passing
// anything other than a struct yields a record with no fields.
func StructRecord(v any) Record {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return structRecord{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return structRecord{}
	}
	return structRecord{value: rv, fields: structFields(rv.Type())}
}

type structRecord struct {
	value  reflect.Value
	fields map[string]int
}

func (s structRecord) Field(key string) (any, bool) {
	if s.fields == nil {
		return nil, false
	}
	idx, ok := s.fields[key]
	if !ok {
		idx, ok = s.fields[strings.ToLower(key)]
	}
	if !ok {
		return nil, false
	}
	return s.value.Field(idx).Interface(), true
}

// fieldCache maps reflect.Type to its resolved field index map. Shared
// across records so repeated wrapping of the same struct type stays cheap.
var fieldCache sync.Map // reflect.Type -> map[string]int

// structFields resolves the lookup table for a struct type: `view` tags are
// registered verbatim, exported field names are registered lowercased.
// A tag of "-" hides the field.
func structFields(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}

	fields := make(map[string]int, t.NumField())
	for i, n := 0, t.NumField(); i < n; i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("view")
		if tag == "-" {
			continue
		}
		if tag != "" {
			if _, taken := fields[tag]; !taken {
				fields[tag] = i
			}
			continue
		}
		lower := strings.ToLower(f.Name)
		if _, taken := fields[lower]; !taken {
			fields[lower] = i
		}
	}

	fieldCache.Store(t, fields)
	return fields
}

// fieldValue extracts a field treating nil values like missing keys, so
// search, sort, and formatting all see one notion of "absent".
func fieldValue(r Record, key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.Field(key)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// displayString renders a field value for matching and display. Absent and
// nil values render as the empty string.
func displayString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
