package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the worksheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// CoordinateRow is one leaf coordinate on one map sheet.
type CoordinateRow struct {
	// Location is the slash-joined name path from the root, e.g. "Region / A".
	Location string
	X        int
	Y        int
}

// CoordinateRows groups every leaf coordinate by map name. The returned
// names are in order of first appearance.
func CoordinateRows(locations []models.Location) ([]string, map[string][]CoordinateRow) {
	var names []string
	rows := make(map[string][]CoordinateRow)
	var walk func(nodes []models.Location, parents []string)
	walk = func(nodes []models.Location, parents []string) {
		for _, loc := range nodes {
			path := append(parents[:len(parents):len(parents)], loc.Name)
			if !loc.IsLeaf() {
				walk(loc.Children, path)
				continue
			}
			for _, e := range loc.MapLocations {
				if _, ok := rows[e.Map]; !ok {
					names = append(names, e.Map)
				}
				rows[e.Map] = append(rows[e.Map], CoordinateRow{
					Location: strings.Join(path, " / "),
					X:        e.X,
					Y:        e.Y,
				})
			}
		}
	}
	walk(locations, nil)
	return names, rows
}

// WriteXLSX writes a workbook with one worksheet per map sheet listing
// every leaf location placed on it.
func WriteXLSX(locations []models.Location, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	names, rows := CoordinateRows(locations)
	keepDefault := len(names) == 0
	for _, name := range names {
		if name == defaultSheet {
			keepDefault = true
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}

		header := []interface{}{"location", "x", "y"}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for i, row := range rows[name] {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			values := []interface{}{row.Location, row.X, row.Y}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return err
			}
		}
	}

	if !keepDefault {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
		idx, err := f.GetSheetIndex(names[0])
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}
