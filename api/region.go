package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

// abortWithDashboardError maps a dashboard error to its response
func abortWithDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, region.ErrUnknownRegion):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownRegion, err)
	case errors.Is(err, series.ErrUnknownCountry):
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCountry, err)
	case errors.Is(err, dashboard.ErrDatasetUnavailable):
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetUnavailable, err)
	default:
		shouldInterupt(err, c)
	}
}

func (s *Server) findRegion(c *gin.Context) (region.Region, bool) {
	id := c.Param("region")
	for _, r := range s.dashboard.Regions() {
		if r.ID == id {
			return r, true
		}
	}
	abortWithEncoding(c, http.StatusNotFound, errorUnknownRegion)
	return region.Region{}, false
}

func (s *Server) regions(c *gin.Context) {
	t := requestTranslator(c)

	list := make([]gin.H, 0)
	for _, r := range s.dashboard.Regions() {
		list = append(list, gin.H{
			"id":            r.ID,
			"name":          t.regionName(r),
			"default_lines": r.DefaultLines,
			"map":           r.Map,
		})
	}

	c.JSON(http.StatusOK, gin.H{"regions": list})
}

func (s *Server) summary(c *gin.Context) {
	r, ok := s.findRegion(c)
	if !ok {
		return
	}

	summary, err := s.dashboard.Summary(c.Request.Context(), r.ID)
	if nil != err {
		abortWithDashboardError(c, err)
		return
	}

	t := requestTranslator(c)
	date := summary.LastUpdate.Format(t.text("date_layout", "2006-01-02", nil))

	c.JSON(http.StatusOK, gin.H{
		"region":      r.ID,
		"name":        t.regionName(r),
		"last_update": summary.LastUpdate,
		"updated_at":  t.text("updated_at", date, map[string]string{"Date": date}),
		"totals":      summary.Totals,
		"changes":     summary.Changes,
		"formatted": gin.H{
			string(schema.Confirmed): utils.FormatCount(t.tag, summary.Totals.Confirmed),
			string(schema.Deaths):    utils.FormatCount(t.tag, summary.Totals.Deaths),
			string(schema.Recovered): utils.FormatCount(t.tag, summary.Totals.Recovered),
		},
		"labels": gin.H{
			string(schema.Confirmed): t.text("metric_confirmed", "Confirmed", nil),
			string(schema.Deaths):    t.text("metric_deaths", "Deaths", nil),
			string(schema.Recovered): t.text("metric_recovered", "Recovered", nil),
		},
	})
}

func (s *Server) counts(c *gin.Context) {
	r, ok := s.findRegion(c)
	if !ok {
		return
	}

	metric, err := schema.ParseMetric(c.Param("metric"))
	if nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
		return
	}

	points, err := s.dashboard.Counts(c.Request.Context(), r.ID, metric)
	if nil != err {
		abortWithDashboardError(c, err)
		return
	}

	t := requestTranslator(c)
	c.JSON(http.StatusOK, gin.H{
		"title": t.text("count_title_"+string(metric), string(metric)+" "+t.inRegion(r), map[string]string{"Region": t.inRegion(r)}),
		"labels": gin.H{
			"x": t.text("count_axis_x", "Time (day)", nil),
			"y": t.text("count_axis_"+string(metric), string(metric), nil),
		},
		"metric": metric,
		"points": points,
	})
}

// selectedCountries reads the line chart selection. Absent means the default
// selection, present but blank means nothing is selected.
func selectedCountries(c *gin.Context) ([]string, bool) {
	values, ok := c.GetQueryArray("countries")
	if !ok {
		return nil, true
	}

	countries := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			countries = append(countries, v)
		}
	}
	return countries, false
}

func (s *Server) lines(c *gin.Context) {
	r, ok := s.findRegion(c)
	if !ok {
		return
	}

	countries, useDefault := selectedCountries(c)

	chart, err := s.dashboard.Lines(c.Request.Context(), r.ID, countries, useDefault)
	if nil != err {
		abortWithDashboardError(c, err)
		return
	}

	t := requestTranslator(c)
	c.JSON(http.StatusOK, gin.H{
		"title": t.text("lines_title", "Number of cases per country", nil),
		"labels": gin.H{
			"x":      t.text("lines_axis_x", "Time", nil),
			"y":      t.text("lines_axis_y", "Confirmed cases", nil),
			"legend": t.text("lines_legend", "Country", nil),
		},
		"dates":  chart.Dates,
		"series": chart.Series,
	})
}

func (s *Server) regionMap(c *gin.Context) {
	r, ok := s.findRegion(c)
	if !ok {
		return
	}

	m, err := s.dashboard.Map(c.Request.Context(), r.ID)
	if nil != err {
		abortWithDashboardError(c, err)
		return
	}

	t := requestTranslator(c)
	c.JSON(http.StatusOK, gin.H{
		"title":  t.text("map_title", t.inRegion(r), map[string]string{"Region": t.inRegion(r)}),
		"color":  t.text("map_color", "Confirmed cases", nil),
		"kind":   m.Kind,
		"scope":  m.Scope,
		"points": m.Points,
	})
}

type snapshotQuery struct {
	Sort  string `form:"sort"`
	Order string `form:"order"`
}

func (s *Server) snapshot(c *gin.Context) {
	r, ok := s.findRegion(c)
	if !ok {
		return
	}

	var q snapshotQuery
	if err := c.ShouldBindQuery(&q); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	column := series.SortConfirmed
	if q.Sort != "" {
		var err error
		if column, err = series.ParseSortColumn(q.Sort); nil != err {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownSortColumn, err)
			return
		}
	}

	var descending bool
	switch q.Order {
	case "", "desc":
		descending = true
	case "asc":
		descending = false
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	snapshot, err := s.dashboard.Snapshot(c.Request.Context(), r.ID, column, descending)
	if nil != err {
		abortWithDashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"region": r.ID,
		"date":   snapshot.Date,
		"sort":   column,
		"order":  map[bool]string{true: "desc", false: "asc"}[descending],
		"rows":   snapshot.Rows,
	})
}
