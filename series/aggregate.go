package series

import (
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// Aggregate sums the rows of each country date by date, collapsing provinces into
// national totals. The result has one row per distinct country, sorted by name.
func Aggregate(t *schema.Table) schema.TimeSeries {
	index := make(map[string]int)
	countries := make([]schema.CountrySeries, 0)

	for _, r := range t.Records {
		i, ok := index[r.Country]
		if !ok {
			i = len(countries)
			index[r.Country] = i
			countries = append(countries, schema.CountrySeries{
				Country: r.Country,
				Values:  make([]int64, len(t.Dates)),
			})
		}

		c := &countries[i]
		if c.Alpha3 == "" {
			c.Alpha3 = r.Alpha3
		}
		for d := range t.Dates {
			if d < len(r.Values) {
				c.Values[d] += r.Values[d]
			}
		}
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Country < countries[j].Country
	})

	return schema.TimeSeries{
		Dates:     t.Dates,
		Countries: countries,
	}
}

// Totals sums every country per date for the count chart
func Totals(ts schema.TimeSeries) []schema.DatePoint {
	points := make([]schema.DatePoint, len(ts.Dates))
	for d, date := range ts.Dates {
		points[d].Date = date
		for _, c := range ts.Countries {
			points[d].Total += c.Values[d]
		}
	}
	return points
}
