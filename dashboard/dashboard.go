package dashboard

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/dataset"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

const (
	logPrefix = "dashboard"
)

var (
	ErrDatasetUnavailable = fmt.Errorf("dataset unavailable")
)

// Sources - urls of the three time-series feeds and of the iso lookup
type Sources struct {
	Confirmed string `json:"confirmed"`
	Deaths    string `json:"deaths"`
	Recovered string `json:"recovered"`
	ISO       string `json:"iso"`
}

// URL returns the feed of a metric
func (s Sources) URL(m schema.Metric) string {
	switch m {
	case schema.Confirmed:
		return s.Confirmed
	case schema.Deaths:
		return s.Deaths
	case schema.Recovered:
		return s.Recovered
	}
	return ""
}

// Dashboard - every table the dashboard page draws
type Dashboard interface {
	Regions() []region.Region
	Sources() Sources
	Ready() bool

	Summary(ctx context.Context, regionID string) (*schema.Summary, error)
	Counts(ctx context.Context, regionID string, metric schema.Metric) ([]schema.DatePoint, error)
	Lines(ctx context.Context, regionID string, countries []string, useDefault bool) (*schema.LineChart, error)
	Map(ctx context.Context, regionID string) (*schema.MapData, error)
	Snapshot(ctx context.Context, regionID string, column series.SortColumn, descending bool) (*schema.Snapshot, error)
}

type dashboard struct {
	source   dataset.Source
	sources  Sources
	registry *region.Registry
}

type cacher interface {
	Cached(url string) bool
}

// view is everything derived from the three feeds for one region
type view struct {
	region   region.Region
	tables   map[schema.Metric]*schema.Table
	series   map[schema.Metric]schema.TimeSeries
	snapshot schema.Snapshot
}

// New - new dashboard reading the feeds of sources through source
func New(source dataset.Source, sources Sources, registry *region.Registry) Dashboard {
	return &dashboard{
		source:   source,
		sources:  sources,
		registry: registry,
	}
}

func (d *dashboard) Regions() []region.Region {
	return d.registry.List()
}

func (d *dashboard) Sources() Sources {
	return d.sources
}

// Ready reports whether every feed has been loaded once
func (d *dashboard) Ready() bool {
	c, ok := d.source.(cacher)
	if !ok {
		return false
	}
	for _, m := range schema.Metrics {
		if !c.Cached(d.sources.URL(m)) {
			return false
		}
	}
	return true
}

func (d *dashboard) view(ctx context.Context, regionID string) (*view, error) {
	r, err := d.registry.Get(regionID)
	if nil != err {
		return nil, err
	}

	v := &view{
		region: r,
		tables: make(map[schema.Metric]*schema.Table),
		series: make(map[schema.Metric]schema.TimeSeries),
	}

	for _, m := range schema.Metrics {
		t, err := d.source.Load(ctx, d.sources.URL(m))
		if nil != err {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"region": regionID,
				"metric": m,
				"error":  err,
			}).Error("load dataset")
			return nil, fmt.Errorf("%w: %s: %s", ErrDatasetUnavailable, m, err)
		}

		subset := region.Filter(t, r)
		v.tables[m] = subset
		v.series[m] = series.Aggregate(subset)
	}

	v.snapshot = series.Snapshot(v.series[schema.Confirmed], v.series[schema.Deaths], v.series[schema.Recovered])

	return v, nil
}

func (d *dashboard) Summary(ctx context.Context, regionID string) (*schema.Summary, error) {
	v, err := d.view(ctx, regionID)
	if nil != err {
		return nil, err
	}

	changes := make(map[schema.Metric]schema.Change)
	for _, m := range schema.Metrics {
		changes[m] = series.DailyChange(series.Totals(v.series[m]))
	}

	return &schema.Summary{
		Region:     v.region.ID,
		LastUpdate: v.series[schema.Confirmed].LastDate(),
		Totals:     series.SnapshotTotals(v.snapshot),
		Changes:    changes,
	}, nil
}

func (d *dashboard) Counts(ctx context.Context, regionID string, metric schema.Metric) ([]schema.DatePoint, error) {
	v, err := d.view(ctx, regionID)
	if nil != err {
		return nil, err
	}

	return series.Totals(v.series[metric]), nil
}

// Lines draws the confirmed cases of countries, or of the region's top countries
// when useDefault is set
func (d *dashboard) Lines(ctx context.Context, regionID string, countries []string, useDefault bool) (*schema.LineChart, error) {
	v, err := d.view(ctx, regionID)
	if nil != err {
		return nil, err
	}

	if useDefault {
		countries = series.TopCountries(v.snapshot, v.region.DefaultLines)
	}

	chart, err := series.Lines(v.series[schema.Confirmed], countries)
	if nil != err {
		return nil, err
	}
	return &chart, nil
}

func (d *dashboard) Map(ctx context.Context, regionID string) (*schema.MapData, error) {
	v, err := d.view(ctx, regionID)
	if nil != err {
		return nil, err
	}

	m := &schema.MapData{
		Kind:  v.region.Map,
		Scope: v.region.MapScope,
	}

	switch v.region.Map {
	case schema.MapScatterGeo:
		m.Points = series.ScatterPoints(v.tables[schema.Confirmed])
	default:
		m.Points = series.ChoroplethPoints(v.series[schema.Confirmed])
	}

	return m, nil
}

func (d *dashboard) Snapshot(ctx context.Context, regionID string, column series.SortColumn, descending bool) (*schema.Snapshot, error) {
	v, err := d.view(ctx, regionID)
	if nil != err {
		return nil, err
	}

	s := series.Sort(v.snapshot, column, descending)
	return &s, nil
}
