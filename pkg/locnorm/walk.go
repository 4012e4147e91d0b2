package locnorm

import (
	"github.com/brunoga/deep"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
)

// NoticeFunc receives each derived entry a leaf is missing.
type NoticeFunc func(loc models.Location, derived models.CoordinateEntry)

// Normalizer rewrites the derived coordinates of a location forest.
type Normalizer struct {
	offsets OffsetTable
	notice  NoticeFunc
}

// NewNormalizer returns a Normalizer using offsets. notice may be nil.
func NewNormalizer(offsets OffsetTable, notice NoticeFunc) *Normalizer {
	return &Normalizer{offsets: offsets, notice: notice}
}

// Normalize returns an updated copy of locations. The input is not modified.
func (n *Normalizer) Normalize(locations []models.Location) ([]models.Location, error) {
	updated, err := deep.Copy(locations)
	if err != nil {
		return nil, err
	}
	if err := n.Walk(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Walk updates every leaf below nodes in place. Containers only recurse;
// their own fields are left as they are.
func (n *Normalizer) Walk(nodes []models.Location) error {
	for i := range nodes {
		node := &nodes[i]
		if !node.IsLeaf() {
			if err := n.Walk(node.Children); err != nil {
				return err
			}
			continue
		}

		entries, err := n.UpdateLocation(*node)
		if err != nil {
			return err
		}
		log.Debug().
			Str("location", node.Name).
			Int("before", len(node.MapLocations)).
			Int("after", len(entries)).
			Msg("updated map locations")
		node.MapLocations = entries
	}
	return nil
}
