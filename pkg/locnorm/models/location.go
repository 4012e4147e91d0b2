package models

import "encoding/json"

// Kind tells leaf locations from containers.
type Kind int

const (
	// KindLeaf is a location carrying its own map coordinates.
	KindLeaf Kind = iota
	// KindContainer is a location grouping child locations.
	KindContainer
)

func (k Kind) String() string {
	if k == KindContainer {
		return "container"
	}
	return "leaf"
}

// Location is one node of the location forest.
// A leaf holds MapLocations; a container holds Children. A container's own
// map_locations, if any, stay in Fields untouched.
type Location struct {
	// Name identifies the location in diagnostics.
	Name string
	// Kind is KindContainer when the source object has a children key.
	Kind Kind
	// MapLocations is the leaf's coordinate list. Nil for containers.
	MapLocations []CoordinateEntry
	// Children is the container's nested locations. Nil for leaves.
	Children []Location
	// Fields lists every key of the source object in order. The
	// map_locations key of a leaf and the children key of a container
	// have a nil Value.
	Fields []Field
}

// NewLeaf builds a leaf location with name and map_locations keys.
func NewLeaf(name string, entries []CoordinateEntry) Location {
	if entries == nil {
		entries = []CoordinateEntry{}
	}
	return Location{
		Name:         name,
		Kind:         KindLeaf,
		MapLocations: entries,
		Fields:       []Field{nameField(name), {Key: "map_locations"}},
	}
}

// NewContainer builds a container location with name and children keys.
func NewContainer(name string, children []Location) Location {
	if children == nil {
		children = []Location{}
	}
	return Location{
		Name:     name,
		Kind:     KindContainer,
		Children: children,
		Fields:   []Field{nameField(name), {Key: "children"}},
	}
}

// IsLeaf reports whether the location carries derived coordinates.
func (l Location) IsLeaf() bool {
	return l.Kind == KindLeaf
}

func nameField(name string) Field {
	raw, _ := json.Marshal(name)
	return Field{Key: "name", Value: raw}
}
