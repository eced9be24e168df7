package schema

import (
	"time"
)

// DateLayout is the header layout of the date columns in the time-series feeds
const DateLayout = "1/2/06"

// RawRecord is one row of a time-series feed as published upstream
type RawRecord struct {
	Province  string
	Country   string
	Latitude  *float64
	Longitude *float64
	Values    []int64
}

// RawTable is a decoded time-series feed
type RawTable struct {
	Dates   []time.Time
	Records []RawRecord
}

// CountryCodeMap - country/region display name to ISO alpha-3 code
type CountryCodeMap map[string]string

// Record is a normalized row: coordinates are present and alpha3 is attached.
// Values is shared between a table and the tables derived from it and must not be written.
type Record struct {
	Province  string  `json:"province,omitempty" bson:"province,omitempty"`
	Country   string  `json:"country" bson:"country"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Alpha3    string  `json:"alpha3" bson:"alpha3"`
	Values    []int64 `json:"values" bson:"values"`
}

// Latest returns the count of the most recent date
func (r Record) Latest() int64 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// Table is a normalized time-series table
type Table struct {
	Dates       []time.Time `json:"dates"`
	Records     []Record    `json:"records"`
	HasProvince bool        `json:"has_province"`
}

// LastDate returns the most recent date column, zero time for an empty table
func (t *Table) LastDate() time.Time {
	if len(t.Dates) == 0 {
		return time.Time{}
	}
	return t.Dates[len(t.Dates)-1]
}

// CountrySeries is the per-date total of a single country
type CountrySeries struct {
	Country string  `json:"country"`
	Alpha3  string  `json:"alpha3"`
	Values  []int64 `json:"values"`
}

// TimeSeries holds one row per country, sorted by country name
type TimeSeries struct {
	Dates     []time.Time     `json:"dates"`
	Countries []CountrySeries `json:"countries"`
}

// LastDate returns the most recent date column, zero time for an empty series
func (t TimeSeries) LastDate() time.Time {
	if len(t.Dates) == 0 {
		return time.Time{}
	}
	return t.Dates[len(t.Dates)-1]
}

// Find returns the series of a country
func (t TimeSeries) Find(country string) (CountrySeries, bool) {
	for _, c := range t.Countries {
		if c.Country == country {
			return c, true
		}
	}
	return CountrySeries{}, false
}
