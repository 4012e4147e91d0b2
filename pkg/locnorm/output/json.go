// Package output writes the location forest back out.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/iancoleman/orderedmap"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
)

// Indent is the indentation used for every written document.
const Indent = "  "

// ToJSON serializes locations with two-space indentation, non-ASCII
// characters escaped as \uXXXX and a trailing newline. Equal forests always
// produce identical bytes.
func ToJSON(locations []models.Location) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(forest(locations)); err != nil {
		return nil, err
	}
	return escapeNonASCII(buf.Bytes()), nil
}

func forest(locations []models.Location) []interface{} {
	items := make([]interface{}, 0, len(locations))
	for _, loc := range locations {
		items = append(items, location(loc))
	}
	return items
}

func location(loc models.Location) *orderedmap.OrderedMap {
	o := newMap()
	for _, f := range loc.Fields {
		switch {
		case f.Value != nil:
			o.Set(f.Key, f.Value)
		case f.Key == "map_locations" && loc.IsLeaf():
			o.Set(f.Key, coordinates(loc.MapLocations))
		case f.Key == "children" && !loc.IsLeaf():
			o.Set(f.Key, forest(loc.Children))
		default:
			o.Set(f.Key, nil)
		}
	}
	return o
}

func coordinates(entries []models.CoordinateEntry) []interface{} {
	items := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		o := newMap()
		o.Set("map", e.Map)
		if e.Malformed == "" {
			o.Set("x", e.X)
			o.Set("y", e.Y)
		}
		for _, f := range e.Extra {
			o.Set(f.Key, f.Value)
		}
		items = append(items, o)
	}
	return items
}

func newMap() *orderedmap.OrderedMap {
	o := orderedmap.New()
	o.SetEscapeHTML(false)
	return o
}

// escapeNonASCII rewrites every non-ASCII rune as a \u escape, using a
// surrogate pair outside the Basic Multilingual Plane. Valid JSON only
// holds such runes inside strings.
func escapeNonASCII(b []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		switch {
		case r < utf8.RuneSelf:
			buf.WriteByte(byte(r))
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&buf, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&buf, `\u%04x`, r)
		}
	}
	return buf.Bytes()
}
