package region

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

var testTable = &schema.Table{
	Dates: []time.Time{
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
	},
	HasProvince: true,
	Records: []schema.Record{
		{Country: "Brazil", Alpha3: "BRA", Latitude: -14, Longitude: -51, Values: []int64{10, 20}},
		{Country: "France", Alpha3: "FRA", Latitude: 46, Longitude: 2, Values: []int64{100, 200}},
		{Province: "French Guiana", Country: "France", Alpha3: "FRA", Latitude: 4, Longitude: -53, Values: []int64{3, 7}},
		{Province: "Falkland Islands (Malvinas)", Country: "United Kingdom", Alpha3: "GBR", Latitude: -51, Longitude: -59, Values: []int64{0, 1}},
		{Province: "Bermuda", Country: "United Kingdom", Alpha3: "GBR", Latitude: 32, Longitude: -64, Values: []int64{2, 2}},
		{Country: "Niger", Alpha3: "NER", Latitude: 17, Longitude: 8, Values: []int64{1, 1}},
		{Country: "Nigeria", Alpha3: "NGA", Latitude: 9, Longitude: 8, Values: []int64{4, 4}},
		{Country: "Chile", Alpha3: "CHL", Latitude: -35, Longitude: -71, Values: []int64{5, 5}},
	},
}

func countries(t *schema.Table) []string {
	names := make([]string, 0, len(t.Records))
	for _, r := range t.Records {
		names = append(names, r.Country)
	}
	return names
}

func TestFilterWorldKeepsEveryRow(t *testing.T) {
	subset := Filter(testTable, World)
	assert.Equal(t, testTable, subset)
	assert.True(t, subset.HasProvince)
}

func TestFilterSouthAmerica(t *testing.T) {
	subset := Filter(testTable, SouthAmerica)

	assert.Equal(t, testTable.Dates, subset.Dates)
	assert.False(t, subset.HasProvince, "province column should be dropped")
	assert.Equal(t, []string{"Brazil", "French Guiana", "Falkland Islands (Malvinas)", "Chile"}, countries(subset))

	for _, r := range subset.Records {
		assert.Equal(t, "", r.Province)
		assert.NotEqual(t, "France", r.Country)
		assert.NotEqual(t, "United Kingdom", r.Country)
	}

	guiana := subset.Records[1]
	assert.Equal(t, int64(7), guiana.Latest())
	assert.Equal(t, "FRA", guiana.Alpha3)
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	_ = Filter(testTable, SouthAmerica)

	assert.Equal(t, "France", testTable.Records[2].Country)
	assert.Equal(t, "French Guiana", testTable.Records[2].Province)
}

func TestFilterMatchesExactly(t *testing.T) {
	r := Region{
		ID:        "sahel",
		Name:      "Sahel",
		Countries: []string{"Niger"},
		Map:       schema.MapScatterGeo,
	}

	subset := Filter(testTable, r)
	assert.Equal(t, []string{"Niger"}, countries(subset), "Nigeria should not match Niger")
}

func TestFilterRowSelectedTwiceIsKeptOnce(t *testing.T) {
	r := Region{
		ID:        "guiana",
		Name:      "Guiana",
		Countries: []string{"France"},
		Provinces: []string{"French Guiana"},
		Map:       schema.MapScatterGeo,
	}

	subset := Filter(testTable, r)
	assert.Equal(t, []string{"France", "France"}, countries(subset))
}

func TestFilterSubsetOfInput(t *testing.T) {
	subset := Filter(testTable, SouthAmerica)

	for _, kept := range subset.Records {
		found := false
		for _, original := range testTable.Records {
			if original.Latitude == kept.Latitude && original.Longitude == kept.Longitude {
				found = true
				_, byCountry := toSet(SouthAmerica.Countries)[original.Country]
				_, byProvince := toSet(SouthAmerica.Provinces)[original.Province]
				assert.True(t, byCountry || byProvince)
			}
		}
		assert.True(t, found, "%s is not from the input", kept.Country)
	}
}
