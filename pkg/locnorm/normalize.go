package locnorm

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/output"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/parser"
)

// Result describes the outcome of one normalization pass.
type Result struct {
	// Path is the locations file that was read.
	Path string
	// Changed is true when the updated document differs from the file.
	Changed bool
	// Written is true when the file was overwritten.
	Written bool
	// NeedsUpdate is true when check mode found drift.
	NeedsUpdate bool
	// Original is the document as read.
	Original []models.Location
	// Updated is the normalized document.
	Updated []models.Location
	// Output is the serialized updated document.
	Output []byte
}

// ExitCode returns the process exit status for the result.
func (r *Result) ExitCode() int {
	if r.NeedsUpdate {
		return 1
	}
	return 0
}

// Load reads and parses a locations file.
func Load(path string) ([]models.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	locations, err := parser.ParseLocations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return locations, nil
}

// Diff normalizes locations against offsets and reports whether the
// result differs from the input. Both are compared in serialized form, so
// key order inside coordinate entries does not count as a change.
func Diff(locations []models.Location, offsets OffsetTable, notice NoticeFunc) (updated []models.Location, out []byte, changed bool, err error) {
	updated, err = NewNormalizer(offsets, notice).Normalize(locations)
	if err != nil {
		return nil, nil, false, err
	}

	before, err := output.ToJSON(locations)
	if err != nil {
		return nil, nil, false, err
	}
	out, err = output.ToJSON(updated)
	if err != nil {
		return nil, nil, false, err
	}
	return updated, out, !bytes.Equal(before, out), nil
}

// Run normalizes the locations file at path and acts on the result as opts
// asks. Notices, the document and status lines go to stdout. The file is
// only written after the whole update succeeded.
func Run(path string, opts Options, stdout io.Writer) (*Result, error) {
	locations, err := Load(path)
	if err != nil {
		return nil, err
	}

	var notice NoticeFunc
	if opts.Explain {
		notice = func(loc models.Location, derived models.CoordinateEntry) {
			fmt.Fprintf(stdout, "Updating '%s' -> %s\n", loc.Name, derived)
		}
	}

	updated, out, changed, err := Diff(locations, DefaultOffsets(), notice)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Path:     path,
		Changed:  changed,
		Original: locations,
		Updated:  updated,
		Output:   out,
	}
	log.Debug().Str("path", path).Bool("changed", changed).Msg("normalized locations")

	if opts.InPlace {
		if !changed {
			fmt.Fprintf(stdout, "No modifications found, not overwriting %s\n", path)
		} else {
			if err := writeFile(path, out); err != nil {
				return nil, err
			}
			result.Written = true
			fmt.Fprintf(stdout, "Modified %s\n", path)
		}
	} else if opts.ShouldPrint() {
		if _, err := stdout.Write(out); err != nil {
			return nil, err
		}
	}

	if opts.Check && changed {
		result.NeedsUpdate = true
		fmt.Fprintf(stdout, "File %s needs updates.\n", path)
	}
	return result, nil
}

// Export normalizes the locations file at path and writes the coordinates
// of every map sheet to an xlsx workbook.
func Export(path, xlsxPath string) error {
	locations, err := Load(path)
	if err != nil {
		return err
	}
	updated, err := NewNormalizer(DefaultOffsets(), nil).Normalize(locations)
	if err != nil {
		return err
	}
	if err := output.WriteXLSX(updated, xlsxPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", xlsxPath, err)
	}
	return nil
}

// CheckJSON verifies that every *.json file below root decodes. It
// returns a *JSONCheckError listing the files that do not.
func CheckJSON(root string) error {
	bad, err := parser.ScanJSONFiles(root)
	if err != nil {
		return err
	}
	if len(bad) > 0 {
		return &JSONCheckError{Files: bad}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}
