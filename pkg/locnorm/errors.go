package locnorm

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/locnorm-go/pkg/locnorm/parser"
)

// ErrUnknownEra indicates an era-relative entry whose map has no offset
// on a composite sheet.
var ErrUnknownEra = errors.New("unknown era")

// ErrUnknownSheet indicates a lookup for a sheet missing from the offset table.
var ErrUnknownSheet = errors.New("unknown composite sheet")

// ErrMalformedLocation indicates a location node of the wrong shape.
var ErrMalformedLocation = parser.ErrMalformedLocation

// CoordinateError represents a failure to derive coordinates for a location.
type CoordinateError struct {
	Location string
	Map      string
	Err      error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("location %q, map %q: %v", e.Location, e.Map, e.Err)
}

func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// JSONCheckError lists the files that failed to decode during CheckJSON.
type JSONCheckError struct {
	Files map[string]error
}

func (e *JSONCheckError) Error() string {
	names := make([]string, 0, len(e.Files))
	for name := range e.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Found problems with JSON files:\n")
	sb.WriteString("---------------------------------\n")
	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "%s:\n* %v", name, e.Files[name])
	}
	return sb.String()
}
