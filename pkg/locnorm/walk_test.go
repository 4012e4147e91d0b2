package locnorm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/locnorm-go/pkg/locnorm/models"
)

func TestNormalizeContainerPassThrough(t *testing.T) {
	region := models.NewContainer("Region", []models.Location{
		models.NewLeaf("A", []models.CoordinateEntry{{Map: "Prehistory", X: 10, Y: 20}}),
		models.NewContainer("Inner", []models.Location{
			models.NewLeaf("B", []models.CoordinateEntry{{Map: "Dark Ages", X: 5, Y: 5}}),
		}),
	})
	region.Fields = append(region.Fields, models.Field{
		Key:   "map_locations",
		Value: json.RawMessage(`[{"map":"Prehistory","x":1,"y":1}]`),
	})
	original := []models.Location{region}

	updated, err := NewNormalizer(DefaultOffsets(), nil).Normalize(original)
	require.NoError(t, err)

	assert.Nil(t, updated[0].MapLocations)
	assert.Equal(t, region.Fields, updated[0].Fields)
	assert.Len(t, updated[0].Children[0].MapLocations, 3)
	assert.Equal(t, []models.CoordinateEntry{
		{Map: "Dark Ages", X: 5, Y: 5},
		{Map: SheetAllEras, X: 5, Y: 1029},
		{Map: SheetAllErasVertical, X: 1541, Y: 5},
	}, updated[0].Children[1].Children[0].MapLocations)

	// The input forest is left as it was.
	assert.Len(t, original[0].Children[0].MapLocations, 1)
	assert.Len(t, original[0].Children[1].Children[0].MapLocations, 1)
}

func TestWalkStopsOnError(t *testing.T) {
	nodes := []models.Location{
		models.NewLeaf("A", []models.CoordinateEntry{{Map: "Present", X: 1, Y: 1}}),
		models.NewContainer("Region", []models.Location{
			models.NewLeaf("B", []models.CoordinateEntry{{Map: "Nowhere", X: 1, Y: 1}}),
		}),
	}

	err := NewNormalizer(DefaultOffsets(), nil).Walk(nodes)
	assert.ErrorIs(t, err, ErrUnknownEra)
}

func TestNormalizeEmptyTable(t *testing.T) {
	nodes := []models.Location{
		models.NewLeaf("A", []models.CoordinateEntry{{Map: "Anywhere", X: 1, Y: 1}}),
	}

	updated, err := NewNormalizer(OffsetTable{}, nil).Normalize(nodes)
	require.NoError(t, err)
	assert.Equal(t, nodes[0].MapLocations, updated[0].MapLocations)
}
