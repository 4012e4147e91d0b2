package models

import "testing"

func TestNewLeaf(t *testing.T) {
	leaf := NewLeaf("A", nil)
	if !leaf.IsLeaf() {
		t.Fatal("expected leaf")
	}
	if leaf.MapLocations == nil || len(leaf.MapLocations) != 0 {
		t.Errorf("expected empty map locations, got %v", leaf.MapLocations)
	}
	if len(leaf.Fields) != 2 || leaf.Fields[0].Key != "name" || leaf.Fields[1].Key != "map_locations" {
		t.Errorf("unexpected fields %+v", leaf.Fields)
	}
	if string(leaf.Fields[0].Value) != `"A"` {
		t.Errorf("expected name value \"A\", got %s", leaf.Fields[0].Value)
	}
	if leaf.Children != nil {
		t.Error("leaf must not have children")
	}
}

func TestNewContainer(t *testing.T) {
	c := NewContainer("Region", []Location{NewLeaf("A", nil)})
	if c.IsLeaf() {
		t.Fatal("expected container")
	}
	if c.Kind.String() != "container" {
		t.Errorf("Kind.String() = %q", c.Kind.String())
	}
	if FieldIndex(c.Fields, "children") != 1 {
		t.Errorf("expected children at index 1, fields %+v", c.Fields)
	}
	if FieldIndex(c.Fields, "map_locations") != -1 {
		t.Error("container must not get map_locations")
	}
	if len(c.Children) != 1 || c.Children[0].Name != "A" {
		t.Errorf("unexpected children %+v", c.Children)
	}
}
