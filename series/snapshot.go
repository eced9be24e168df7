package series

import (
	"math"
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func latest(ts schema.TimeSeries) map[string]int64 {
	m := make(map[string]int64, len(ts.Countries))
	if len(ts.Dates) == 0 {
		return m
	}
	last := len(ts.Dates) - 1
	for _, c := range ts.Countries {
		m[c.Country] = c.Values[last]
	}
	return m
}

func lookup(m map[string]int64, country string) *int64 {
	v, ok := m[country]
	if !ok {
		return nil
	}
	return &v
}

// Fatality is deaths/confirmed rounded half to even at two decimals, nil when it
// is undefined
func Fatality(deaths, confirmed *int64) *float64 {
	if deaths == nil || confirmed == nil || *confirmed == 0 {
		return nil
	}
	f := math.RoundToEven(float64(*deaths)/float64(*confirmed)*100) / 100
	return &f
}

// Snapshot joins the most recent date of each series by country. A country missing
// from a series gets a nil count for that metric.
func Snapshot(confirmed, deaths, recovered schema.TimeSeries) schema.Snapshot {
	c := latest(confirmed)
	d := latest(deaths)
	r := latest(recovered)

	alpha3 := make(map[string]string)
	for _, ts := range []schema.TimeSeries{recovered, deaths, confirmed} {
		for _, s := range ts.Countries {
			if s.Alpha3 != "" {
				alpha3[s.Country] = s.Alpha3
			} else if _, ok := alpha3[s.Country]; !ok {
				alpha3[s.Country] = ""
			}
		}
	}

	rows := make([]schema.SnapshotRow, 0, len(alpha3))
	for country, code := range alpha3 {
		row := schema.SnapshotRow{
			Country:   country,
			Alpha3:    code,
			Confirmed: lookup(c, country),
			Deaths:    lookup(d, country),
			Recovered: lookup(r, country),
		}
		row.Fatality = Fatality(row.Deaths, row.Confirmed)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Country < rows[j].Country
	})

	return schema.Snapshot{
		Date: confirmed.LastDate(),
		Rows: rows,
	}
}

// SnapshotTotals sums each column of s, skipping missing values
func SnapshotTotals(s schema.Snapshot) schema.Totals {
	var t schema.Totals
	for _, row := range s.Rows {
		if row.Confirmed != nil {
			t.Confirmed += *row.Confirmed
		}
		if row.Deaths != nil {
			t.Deaths += *row.Deaths
		}
		if row.Recovered != nil {
			t.Recovered += *row.Recovered
		}
	}
	return t
}
