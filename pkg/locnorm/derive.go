package locnorm

import (
	"fmt"

	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
)

// Derive returns the composite-sheet entries for one era-relative entry,
// one per sheet in table order.
func (t OffsetTable) Derive(entry models.CoordinateEntry) ([]models.CoordinateEntry, error) {
	derived := make([]models.CoordinateEntry, 0, len(t.sheets))
	for _, s := range t.sheets {
		off, err := t.Offset(s.Name, entry.Map)
		if err != nil {
			return nil, err
		}
		derived = append(derived, models.CoordinateEntry{
			Map: s.Name,
			X:   entry.X + off.X,
			Y:   entry.Y + off.Y,
		})
	}
	return derived, nil
}

// UpdateLocation recomputes the map_locations of a leaf. Composite entries
// are dropped; each era-relative entry is kept in order and followed by
// its derived entries. Derived entries missing from the current list are
// reported to the normalizer's notice function.
func (n *Normalizer) UpdateLocation(loc models.Location) ([]models.CoordinateEntry, error) {
	updated := make([]models.CoordinateEntry, 0, len(loc.MapLocations)*(len(n.offsets.sheets)+1))
	for _, entry := range loc.MapLocations {
		if n.offsets.IsComposite(entry.Map) {
			continue
		}
		if entry.Malformed != "" {
			return nil, &CoordinateError{
				Location: loc.Name,
				Map:      entry.Map,
				Err:      fmt.Errorf("%w: %s", ErrMalformedLocation, entry.Malformed),
			}
		}

		derived, err := n.offsets.Derive(entry)
		if err != nil {
			return nil, &CoordinateError{Location: loc.Name, Map: entry.Map, Err: err}
		}

		updated = append(updated, entry)
		for _, d := range derived {
			if n.notice != nil && !models.ContainsEntry(loc.MapLocations, d) {
				n.notice(loc, d)
			}
			updated = append(updated, d)
		}
	}
	return updated, nil
}
