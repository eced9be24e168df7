package schema

import "time"

// MapKind is the way a region is drawn on a map
type MapKind string

const (
	MapChoropleth MapKind = "choropleth"
	MapScatterGeo MapKind = "scatter_geo"
)

// DatePoint is a single bar of the count chart
type DatePoint struct {
	Date  time.Time `json:"date"`
	Total int64     `json:"total"`
}

// LineSeries is one line of the line chart
type LineSeries struct {
	Country string  `json:"country"`
	Values  []int64 `json:"values"`
}

// LineChart holds the confirmed counts of the selected countries
type LineChart struct {
	Dates  []time.Time  `json:"dates"`
	Series []LineSeries `json:"series"`
}

// MapPoint is a single location on the map
type MapPoint struct {
	Country   string   `json:"country"`
	Alpha3    string   `json:"alpha3,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Total     int64    `json:"total"`
}

// MapData is what a map of a region needs
type MapData struct {
	Kind   MapKind    `json:"kind"`
	Scope  string     `json:"scope"`
	Points []MapPoint `json:"points"`
}

// Totals holds the region wide sum of each snapshot column
type Totals struct {
	Confirmed int64 `json:"confirmed"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
}

// Change is the difference between the last two daily totals
type Change struct {
	Delta int64   `json:"delta"`
	Rate  float64 `json:"rate"`
}

// Summary is the header of a region
type Summary struct {
	Region     string    `json:"region"`
	LastUpdate time.Time `json:"last_update"`
	Totals     Totals    `json:"totals"`

	// change of each region total against the previous day
	Changes map[Metric]Change `json:"changes"`
}
