package series

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// SortColumn is a column of the snapshot table
type SortColumn string

const (
	SortCountry   SortColumn = "country"
	SortConfirmed SortColumn = "confirmed"
	SortDeaths    SortColumn = "deaths"
	SortRecovered SortColumn = "recovered"
	SortFatality  SortColumn = "fatality"
)

var (
	ErrUnknownSortColumn = fmt.Errorf("unknown sort column")
	ErrUnknownCountry    = fmt.Errorf("unknown country")
)

// ParseSortColumn validates a snapshot column name
func ParseSortColumn(s string) (SortColumn, error) {
	switch SortColumn(s) {
	case SortCountry, SortConfirmed, SortDeaths, SortRecovered, SortFatality:
		return SortColumn(s), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSortColumn, s)
}

// both values must be present
func compareCount(a, b *int64) (less, equal bool) {
	return *a < *b, *a == *b
}

func compareRatio(a, b *float64) (less, equal bool) {
	return *a < *b, *a == *b
}

func missing(row schema.SnapshotRow, column SortColumn) bool {
	switch column {
	case SortConfirmed:
		return row.Confirmed == nil
	case SortDeaths:
		return row.Deaths == nil
	case SortRecovered:
		return row.Recovered == nil
	case SortFatality:
		return row.Fatality == nil
	}
	return false
}

// Sort returns a copy of s ordered by column. Missing values always go last and
// ties keep the country order.
func Sort(s schema.Snapshot, column SortColumn, descending bool) schema.Snapshot {
	rows := make([]schema.SnapshotRow, len(s.Rows))
	copy(rows, s.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		ma, mb := missing(a, column), missing(b, column)
		if ma || mb {
			return !ma && mb
		}

		var less, equal bool
		switch column {
		case SortConfirmed:
			less, equal = compareCount(a.Confirmed, b.Confirmed)
		case SortDeaths:
			less, equal = compareCount(a.Deaths, b.Deaths)
		case SortRecovered:
			less, equal = compareCount(a.Recovered, b.Recovered)
		case SortFatality:
			less, equal = compareRatio(a.Fatality, b.Fatality)
		default:
			less, equal = a.Country < b.Country, a.Country == b.Country
		}

		if equal {
			return false
		}
		if descending {
			return !less
		}
		return less
	})

	return schema.Snapshot{
		Date: s.Date,
		Rows: rows,
	}
}

// TopCountries returns up to n countries with the most confirmed cases
func TopCountries(s schema.Snapshot, n int) []string {
	sorted := Sort(s, SortConfirmed, true)

	if n > len(sorted.Rows) {
		n = len(sorted.Rows)
	}
	top := make([]string, 0, n)
	for _, row := range sorted.Rows[:n] {
		top = append(top, row.Country)
	}
	return top
}

// Lines picks the series of the given countries in the given order. No country
// gives an empty chart.
func Lines(ts schema.TimeSeries, countries []string) (schema.LineChart, error) {
	chart := schema.LineChart{
		Dates:  ts.Dates,
		Series: make([]schema.LineSeries, 0, len(countries)),
	}

	for _, name := range countries {
		c, ok := ts.Find(name)
		if !ok {
			return schema.LineChart{}, fmt.Errorf("%w: %s", ErrUnknownCountry, name)
		}
		chart.Series = append(chart.Series, schema.LineSeries{
			Country: c.Country,
			Values:  c.Values,
		})
	}

	return chart, nil
}

// ChoroplethPoints is the latest total of each country keyed by alpha3.
// Countries without an alpha3 cannot be colored and are left out.
func ChoroplethPoints(ts schema.TimeSeries) []schema.MapPoint {
	points := make([]schema.MapPoint, 0, len(ts.Countries))
	if len(ts.Dates) == 0 {
		return points
	}

	last := len(ts.Dates) - 1
	for _, c := range ts.Countries {
		if c.Alpha3 == "" {
			continue
		}
		points = append(points, schema.MapPoint{
			Country: c.Country,
			Alpha3:  c.Alpha3,
			Total:   c.Values[last],
		})
	}
	return points
}

// ScatterPoints is the latest total of each row at its own coordinates
func ScatterPoints(t *schema.Table) []schema.MapPoint {
	points := make([]schema.MapPoint, 0, len(t.Records))
	for _, r := range t.Records {
		latitude, longitude := r.Latitude, r.Longitude
		points = append(points, schema.MapPoint{
			Country:   r.Country,
			Alpha3:    r.Alpha3,
			Latitude:  &latitude,
			Longitude: &longitude,
			Total:     r.Latest(),
		})
	}
	return points
}
