package region

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const testDefinitions = `
regions:
  - id: mercosur
    name: Mercosur
    countries: [Argentina, Brazil, Paraguay, Uruguay]
    default_lines: 4
    map: scatter_geo
    map_scope: south america
`

func TestRegistry(t *testing.T) {
	extra, err := Decode(strings.NewReader(testDefinitions))
	assert.Nil(t, err, "wrong Decode")
	assert.Len(t, extra, 1)
	assert.Equal(t, schema.MapScatterGeo, extra[0].Map)

	r, err := NewRegistry(extra...)
	assert.Nil(t, err, "wrong NewRegistry")

	ids := []string{}
	for _, region := range r.List() {
		ids = append(ids, region.ID)
	}
	assert.Equal(t, []string{WorldID, SouthAmericaID, "mercosur"}, ids)

	mercosur, err := r.Get("mercosur")
	assert.Nil(t, err)
	assert.Equal(t, 4, mercosur.DefaultLines)
	assert.Equal(t, []string{"Argentina", "Brazil", "Paraguay", "Uruguay"}, mercosur.Countries)

	_, err = r.Get("atlantis")
	assert.True(t, errors.Is(err, ErrUnknownRegion))
}

func TestRegistryRejectsInvalidRegions(t *testing.T) {
	_, err := NewRegistry(Region{ID: WorldID, Name: "Again", Map: schema.MapChoropleth})
	assert.True(t, errors.Is(err, ErrDuplicateRegion))

	_, err = NewRegistry(Region{ID: "x", Name: "X", Map: "globe"})
	assert.True(t, errors.Is(err, ErrInvalidRegion))

	_, err = Decode(strings.NewReader("regions:\n  - id: x\n    colour: red\n"))
	assert.True(t, errors.Is(err, ErrInvalidRegion))
}
