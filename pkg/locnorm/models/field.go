// Package models defines the location forest read from a pack's locations file.
package models

import "encoding/json"

// Field is one key of a JSON object, kept in source order.
type Field struct {
	// Key is the object key.
	Key string
	// Value is the raw JSON value. It is nil for keys whose value is held
	// in a typed field of the owning struct.
	Value json.RawMessage
}

// FieldIndex returns the position of key in fields, or -1.
func FieldIndex(fields []Field, key string) int {
	for i, f := range fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}
