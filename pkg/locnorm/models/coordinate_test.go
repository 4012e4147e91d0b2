package models

import (
	"encoding/json"
	"testing"
)

func TestCoordinateEntryString(t *testing.T) {
	tests := []struct {
		entry    CoordinateEntry
		expected string
	}{
		{CoordinateEntry{Map: "All Eras", X: 10, Y: 20}, "{'map': 'All Eras', 'x': 10, 'y': 20}"},
		{CoordinateEntry{Map: "Dark Ages", X: -5, Y: 0}, "{'map': 'Dark Ages', 'x': -5, 'y': 0}"},
		{CoordinateEntry{Map: "Lavos' Shell", X: 1, Y: 2}, `{'map': "Lavos' Shell", 'x': 1, 'y': 2}`},
		{
			CoordinateEntry{Map: "Present", X: 1, Y: 2, Extra: []Field{{Key: "size", Value: json.RawMessage("16")}}},
			"{'map': 'Present', 'x': 1, 'y': 2, 'size': 16}",
		},
	}

	for _, tt := range tests {
		if result := tt.entry.String(); result != tt.expected {
			t.Errorf("String() = %q, expected %q", result, tt.expected)
		}
	}
}

func TestCoordinateEntryEqual(t *testing.T) {
	base := CoordinateEntry{Map: "Present", X: 1, Y: 2}
	withSize := CoordinateEntry{Map: "Present", X: 1, Y: 2, Extra: []Field{{Key: "size", Value: json.RawMessage("16")}}}

	tests := []struct {
		a, b     CoordinateEntry
		expected bool
	}{
		{base, base, true},
		{base, CoordinateEntry{Map: "Present", X: 1, Y: 3}, false},
		{base, CoordinateEntry{Map: "Future", X: 1, Y: 2}, false},
		{base, withSize, false},
		{withSize, withSize, true},
		{withSize, CoordinateEntry{Map: "Present", X: 1, Y: 2, Extra: []Field{{Key: "size", Value: json.RawMessage("8")}}}, false},
	}

	for _, tt := range tests {
		if result := tt.a.Equal(tt.b); result != tt.expected {
			t.Errorf("%v.Equal(%v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestContainsEntry(t *testing.T) {
	entries := []CoordinateEntry{
		{Map: "Prehistory", X: 10, Y: 20},
		{Map: "All Eras", X: 10, Y: 20},
	}
	if !ContainsEntry(entries, CoordinateEntry{Map: "All Eras", X: 10, Y: 20}) {
		t.Error("expected entry to be found")
	}
	if ContainsEntry(entries, CoordinateEntry{Map: "All Eras (Vertical)", X: 10, Y: 20}) {
		t.Error("expected entry to be missing")
	}
}
