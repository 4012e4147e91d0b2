package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
)

// ParseLocations decodes a locations document: a JSON array of location
// objects. Key order of every object is kept so the document can be
// written back unchanged.
func ParseLocations(data []byte) ([]models.Location, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid locations document: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("invalid locations document: %w", malformed("top level must be an array"))
	}
	return parseForest(items, "")
}

func parseForest(items []json.RawMessage, prefix string) ([]models.Location, error) {
	result := make([]models.Location, 0, len(items))
	for i, raw := range items {
		loc, err := parseLocation(raw, fmt.Sprintf("%s[%d]", prefix, i))
		if err != nil {
			return nil, err
		}
		result = append(result, loc)
	}
	return result, nil
}

func parseLocation(raw json.RawMessage, path string) (models.Location, error) {
	fields, err := readObject(raw)
	if err != nil {
		return models.Location{}, &LocationError{Path: path, Err: malformed("%v", err)}
	}

	loc := models.Location{Fields: fields}
	if i := models.FieldIndex(fields, "name"); i >= 0 {
		if err := json.Unmarshal(fields[i].Value, &loc.Name); err != nil {
			loc.Name = string(fields[i].Value)
		}
	}

	// children decides the node kind; a container's map_locations is
	// passed through as raw JSON.
	if i := models.FieldIndex(fields, "children"); i >= 0 {
		var items []json.RawMessage
		if err := json.Unmarshal(fields[i].Value, &items); err != nil || items == nil {
			return models.Location{}, &LocationError{Path: path, Name: loc.Name, Err: malformed("children must be an array")}
		}
		children, err := parseForest(items, path+".children")
		if err != nil {
			return models.Location{}, err
		}
		loc.Kind = models.KindContainer
		loc.Children = children
		fields[i].Value = nil
		return loc, nil
	}

	i := models.FieldIndex(fields, "map_locations")
	if i < 0 {
		return models.Location{}, &LocationError{Path: path, Name: loc.Name, Err: malformed("neither map_locations nor children present")}
	}
	entries, err := parseEntries(fields[i].Value)
	if err != nil {
		return models.Location{}, &LocationError{Path: path, Name: loc.Name, Err: err}
	}
	loc.Kind = models.KindLeaf
	loc.MapLocations = entries
	fields[i].Value = nil
	return loc, nil
}

func parseEntries(raw json.RawMessage) ([]models.CoordinateEntry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, malformed("map_locations must be an array")
	}

	entries := make([]models.CoordinateEntry, 0, len(items))
	for n, item := range items {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, fmt.Errorf("map_locations[%d]: %w", n, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(raw json.RawMessage) (models.CoordinateEntry, error) {
	fields, err := readObject(raw)
	if err != nil {
		return models.CoordinateEntry{}, malformed("%v", err)
	}

	// Only map is required here. Coordinates that cannot be read are kept
	// raw in Extra; they matter only if the entry turns out to be an era
	// entry, since composite entries are regenerated.
	var entry models.CoordinateEntry
	hasMap, hasX, hasY := false, false, false
	for _, f := range fields {
		switch f.Key {
		case "map":
			if err := json.Unmarshal(f.Value, &entry.Map); err != nil {
				return models.CoordinateEntry{}, malformed("invalid %q: %s", f.Key, f.Value)
			}
			hasMap = true
		case "x":
			if json.Unmarshal(f.Value, &entry.X) != nil {
				entry.Extra = append(entry.Extra, f)
				continue
			}
			hasX = true
		case "y":
			if json.Unmarshal(f.Value, &entry.Y) != nil {
				entry.Extra = append(entry.Extra, f)
				continue
			}
			hasY = true
		default:
			entry.Extra = append(entry.Extra, f)
		}
	}
	if !hasMap {
		return models.CoordinateEntry{}, malformed("entry needs a map")
	}
	switch {
	case !hasX && !hasY:
		entry.Malformed = "x and y must be integers"
	case !hasX:
		entry.Malformed = "x must be an integer"
	case !hasY:
		entry.Malformed = "y must be an integer"
	}
	return entry, nil
}

// readObject decodes a JSON object into its fields in source order. A
// repeated key keeps its first position and takes the last value.
func readObject(raw json.RawMessage) ([]models.Field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %s", raw)
	}

	var fields []models.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i := models.FieldIndex(fields, key); i >= 0 {
			fields[i].Value = value
			continue
		}
		fields = append(fields, models.Field{Key: key, Value: value})
	}
	return fields, nil
}
