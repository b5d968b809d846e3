// Package coerce converts arbitrary values into the canonical string
// form carried by runner commands.
package coerce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ToCommandValue returns the string form of v used in command messages,
// property values and file command payloads.
//
//   - nil (including typed nil pointers, maps and slices) becomes ""
//   - strings are returned unchanged
//   - errors become their Error() text
//   - everything else is rendered as compact JSON, so numbers and
//     booleans print their literal form and structs, maps and slices
//     become JSON documents
//
// It never fails: values JSON cannot represent fall back to "null"
// for non-finite floats and to fmt's %v form otherwise.
func ToCommandValue(v any) string {
	if isNil(v) {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "null"
		}
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return "null"
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// isNil reports untyped nil and nil pointers, maps, slices and interfaces.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsFalsy reports values that are unset for property purposes: nil,
// "", false and numeric zero.
func IsFalsy(v any) bool {
	if isNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}
