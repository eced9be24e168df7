package region

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Filter returns the rows of t which belong to r. A row is kept when its country is
// one of r.Countries or its province is one of r.Provinces, matched exactly. The
// country of every kept row is then renamed through r.Rename and the province is
// dropped. t is not modified.
func Filter(t *schema.Table, r Region) *schema.Table {
	if r.IsWorld() {
		return t
	}

	countries := toSet(r.Countries)
	provinces := toSet(r.Provinces)

	subset := &schema.Table{
		Dates:       t.Dates,
		Records:     make([]schema.Record, 0),
		HasProvince: false,
	}

	for _, record := range t.Records {
		_, byCountry := countries[record.Country]
		_, byProvince := provinces[record.Province]
		if !byCountry && !byProvince {
			continue
		}

		if renamed, ok := r.Rename[record.Country]; ok {
			record.Country = renamed
		}
		record.Province = ""

		subset.Records = append(subset.Records, record)
	}

	return subset
}
