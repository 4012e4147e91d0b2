package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CoordinateEntry places a location on one map sheet.
type CoordinateEntry struct {
	// Map is an era name (e.g. "Prehistory") or a composite sheet name
	// (e.g. "All Eras").
	Map string
	// X is the horizontal pixel coordinate on the sheet.
	X int
	// Y is the vertical pixel coordinate on the sheet.
	Y int
	// Extra holds any other keys of the entry, in source order, including
	// x or y when they are not integers.
	Extra []Field
	// Malformed says why X or Y could not be read. Empty for a well-formed
	// entry.
	Malformed string
}

// Equal reports whether both entries carry the same map, coordinates and
// extra keys.
func (e CoordinateEntry) Equal(o CoordinateEntry) bool {
	if e.Map != o.Map || e.Malformed != o.Malformed || e.X != o.X || e.Y != o.Y || len(e.Extra) != len(o.Extra) {
		return false
	}
	for _, f := range e.Extra {
		i := FieldIndex(o.Extra, f.Key)
		if i < 0 || string(o.Extra[i].Value) != string(f.Value) {
			return false
		}
	}
	return true
}

// String renders the entry as {'map': 'All Eras', 'x': 10, 'y': 20}.
func (e CoordinateEntry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{'map': %s", quote(e.Map))
	if e.Malformed == "" {
		fmt.Fprintf(&sb, ", 'x': %d, 'y': %d", e.X, e.Y)
	}
	for _, f := range e.Extra {
		fmt.Fprintf(&sb, ", %s: %s", quote(f.Key), f.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// ContainsEntry reports whether entries holds an entry equal to e.
func ContainsEntry(entries []CoordinateEntry, e CoordinateEntry) bool {
	for _, c := range entries {
		if c.Equal(e) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return strconv.Quote(s)
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
