package locnorm

import (
	"fmt"
	"maps"
)

// Composite sheet names in the default table.
const (
	SheetAllEras         = "All Eras"
	SheetAllErasVertical = "All Eras (Vertical)"
)

// Offset is the position of an era's origin on a composite sheet.
type Offset struct {
	X int
	Y int
}

// Sheet is a composite map sheet and the offset of every era tiled into it.
type Sheet struct {
	Name string
	Eras map[string]Offset
}

// OffsetTable maps composite sheets to per-era offsets. Sheets keep their
// declaration order, which is the order derived entries are emitted in.
// The zero value has no sheets.
type OffsetTable struct {
	sheets []Sheet
}

// NewOffsetTable builds a table from sheets. The sheets are copied.
func NewOffsetTable(sheets ...Sheet) OffsetTable {
	t := OffsetTable{sheets: make([]Sheet, 0, len(sheets))}
	for _, s := range sheets {
		t.sheets = append(t.sheets, Sheet{Name: s.Name, Eras: maps.Clone(s.Eras)})
	}
	return t
}

// DefaultOffsets returns the offsets of the two "All Eras" overview maps.
// Each era sheet is 1536x1024 pixels.
func DefaultOffsets() OffsetTable {
	return NewOffsetTable(
		// Prehistory | Middle Ages | Future
		// Dark Ages  | Present     | End Of Time
		Sheet{Name: SheetAllEras, Eras: map[string]Offset{
			"Prehistory":  {0, 0},
			"Dark Ages":   {0, 1024},
			"Middle Ages": {1536, 0},
			"Present":     {1536, 1024},
			"Future":      {3072, 0},
			"End Of Time": {3072, 1024},
		}},
		// Prehistory  | Dark Ages
		// Middle Ages | Present
		// Future      | End Of Time
		Sheet{Name: SheetAllErasVertical, Eras: map[string]Offset{
			"Prehistory":  {0, 0},
			"Dark Ages":   {1536, 0},
			"Middle Ages": {0, 1024},
			"Present":     {1536, 1024},
			"Future":      {0, 2048},
			"End Of Time": {1536, 2048},
		}},
	)
}

// Sheets returns the composite sheet names in declaration order.
func (t OffsetTable) Sheets() []string {
	names := make([]string, len(t.sheets))
	for i, s := range t.sheets {
		names[i] = s.Name
	}
	return names
}

// IsComposite reports whether name is one of the table's composite sheets.
func (t OffsetTable) IsComposite(name string) bool {
	return t.sheet(name) != nil
}

// Offset returns the offset of era on the composite sheet.
func (t OffsetTable) Offset(sheet, era string) (Offset, error) {
	s := t.sheet(sheet)
	if s == nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}
	off, ok := s.Eras[era]
	if !ok {
		return Offset{}, fmt.Errorf("%w: %q has no offset on %q", ErrUnknownEra, era, sheet)
	}
	return off, nil
}

func (t OffsetTable) sheet(name string) *Sheet {
	for i := range t.sheets {
		if t.sheets[i].Name == name {
			return &t.sheets[i]
		}
	}
	return nil
}
