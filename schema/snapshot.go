package schema

import (
	"fmt"
	"time"
)

const (
	SnapshotCollection = "snapshot"
)

// Metric is one of the cumulative counts published per country and date
type Metric string

const (
	Confirmed Metric = "confirmed"
	Deaths    Metric = "deaths"
	Recovered Metric = "recovered"
)

// Metrics lists every metric in display order
var Metrics = []Metric{Confirmed, Deaths, Recovered}

// ParseMetric validates a metric name
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case Confirmed, Deaths, Recovered:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric: %s", s)
}

// SnapshotRow is the latest state of one country. A nil count means the country
// is absent from that metric's feed; a nil fatality means it is undefined.
type SnapshotRow struct {
	Country   string   `json:"country" bson:"country"`
	Alpha3    string   `json:"alpha3" bson:"alpha3"`
	Confirmed *int64   `json:"confirmed" bson:"confirmed"`
	Deaths    *int64   `json:"deaths" bson:"deaths"`
	Recovered *int64   `json:"recovered" bson:"recovered"`
	Fatality  *float64 `json:"fatality" bson:"fatality"`
}

// Snapshot is the most recent per-country table of a region
type Snapshot struct {
	Date time.Time     `json:"date" bson:"date"`
	Rows []SnapshotRow `json:"rows" bson:"rows"`
}

// SnapshotRecord is the archived form of one snapshot row
type SnapshotRecord struct {
	Region      string `bson:"region"`
	ReportDate  string `bson:"report_date"`
	ReportTime  int64  `bson:"report_ts"`
	UpdateTime  int64  `bson:"update_ts"`
	SnapshotRow `bson:",inline"`
}
