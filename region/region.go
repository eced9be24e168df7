package region

import (
	"fmt"

	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	WorldID        = "world"
	SouthAmericaID = "south-america"
)

var (
	ErrUnknownRegion   = fmt.Errorf("unknown region")
	ErrInvalidRegion   = fmt.Errorf("invalid region definition")
	ErrDuplicateRegion = fmt.Errorf("duplicate region")
)

// Region is a named selection of countries. A region without any country or
// province keeps every row.
type Region struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Countries    []string          `json:"countries,omitempty" yaml:"countries"`
	Provinces    []string          `json:"provinces,omitempty" yaml:"provinces"`
	Rename       map[string]string `json:"rename,omitempty" yaml:"rename"`
	DefaultLines int               `json:"default_lines" yaml:"default_lines"`
	Map          schema.MapKind    `json:"map" yaml:"map"`
	MapScope     string            `json:"map_scope" yaml:"map_scope"`
}

// IsWorld reports whether the region keeps every row
func (r Region) IsWorld() bool {
	return len(r.Countries) == 0 && len(r.Provinces) == 0
}

func (r Region) validate() error {
	if r.ID == "" || r.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidRegion)
	}
	if r.DefaultLines < 0 {
		return fmt.Errorf("%w: %s has negative default_lines", ErrInvalidRegion, r.ID)
	}
	switch r.Map {
	case schema.MapChoropleth, schema.MapScatterGeo:
	default:
		return fmt.Errorf("%w: %s has unknown map kind %q", ErrInvalidRegion, r.ID, r.Map)
	}
	return nil
}

// World - every country
var World = Region{
	ID:           WorldID,
	Name:         "World",
	DefaultLines: 5,
	Map:          schema.MapChoropleth,
	MapScope:     "world",
}

// SouthAmerica - the south american countries plus french guiana and the falkland islands
var SouthAmerica = Region{
	ID:           SouthAmericaID,
	Name:         "South America",
	Countries:    consts.SouthAmericaCountries,
	Provinces:    consts.SouthAmericaProvinces,
	Rename:       consts.SouthAmericaRename,
	DefaultLines: 3,
	Map:          schema.MapScatterGeo,
	MapScope:     "south america",
}
