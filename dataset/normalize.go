package dataset

import (
	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Normalize drops the rows without coordinates and attaches the alpha3 code of
// each row's country. A country missing from codes gets an empty alpha3.
func Normalize(raw *schema.RawTable, codes schema.CountryCodeMap) *schema.Table {
	t := &schema.Table{
		Dates:       raw.Dates,
		Records:     make([]schema.Record, 0, len(raw.Records)),
		HasProvince: true,
	}

	for _, r := range raw.Records {
		if r.Latitude == nil || r.Longitude == nil {
			continue
		}

		t.Records = append(t.Records, schema.Record{
			Province:  r.Province,
			Country:   r.Country,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Alpha3:    codes[r.Country],
			Values:    r.Values,
		})
	}

	return t
}
