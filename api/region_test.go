package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/api/mocks"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/region"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/series"
)

var lastUpdate = time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)

func newTestServer(ctl *gomock.Controller) (*Server, *mocks.MockDashboard) {
	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().Regions().Return([]region.Region{region.World, region.SouthAmerica}).AnyTimes()

	return NewServer(d), d
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.setupRouter().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var e ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &e)
	assert.Nil(t, err, "wrong json unmarshal")
	return e
}

func TestSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	d.EXPECT().Summary(gomock.Any(), region.SouthAmericaID).Return(&schema.Summary{
		Region:     region.SouthAmericaID,
		LastUpdate: lastUpdate,
		Totals:     schema.Totals{Confirmed: 1234567, Deaths: 3, Recovered: 6},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/regions/south-america/summary?lang=pt-BR", nil)
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Region    string            `json:"region"`
		Name      string            `json:"name"`
		UpdatedAt string            `json:"updated_at"`
		Totals    schema.Totals     `json:"totals"`
		Formatted map[string]string `json:"formatted"`
		Labels    map[string]string `json:"labels"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, "south-america", resp.Region)
	assert.Equal(t, "América do Sul", resp.Name)
	assert.Equal(t, "Atualizado em: 02-03-2020", resp.UpdatedAt)
	assert.Equal(t, int64(1234567), resp.Totals.Confirmed)
	assert.Equal(t, "1.234.567", resp.Formatted["confirmed"])
	assert.Equal(t, "Mortes", resp.Labels["deaths"])
}

func TestCounts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	points := []schema.DatePoint{{Date: lastUpdate, Total: 25}}
	d.EXPECT().Counts(gomock.Any(), region.WorldID, schema.Deaths).Return(points, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/regions/world/counts/deaths", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Title  string             `json:"title"`
		Labels map[string]string  `json:"labels"`
		Points []schema.DatePoint `json:"points"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Count of Covid-19 deaths in the World", resp.Title)
	assert.Equal(t, "Time (day)", resp.Labels["x"])
	assert.Equal(t, "Deaths", resp.Labels["y"])
	assert.Equal(t, points, resp.Points)
}

func TestCountsUnknownMetric(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/world/counts/active", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorUnknownMetric, decodeError(t, w))
}

func TestUnknownRegion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/atlantis/summary", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, errorUnknownRegion, decodeError(t, w))
}

func TestLinesSelection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)

	chart := &schema.LineChart{
		Dates:  []time.Time{lastUpdate},
		Series: []schema.LineSeries{{Country: "Brazil", Values: []int64{20}}},
	}

	gomock.InOrder(
		d.EXPECT().Lines(gomock.Any(), region.WorldID, nil, true).Return(chart, nil),
		d.EXPECT().Lines(gomock.Any(), region.WorldID, []string{}, false).Return(&schema.LineChart{}, nil),
		d.EXPECT().Lines(gomock.Any(), region.WorldID, []string{"Brazil", "Chile"}, false).Return(chart, nil),
	)

	for _, query := range []string{"", "?countries=", "?countries=Brazil&countries=Chile"} {
		w := serve(s, httptest.NewRequest("GET", "/api/regions/world/lines"+query, nil))
		assert.Equal(t, http.StatusOK, w.Code, "wrong status code for %q", query)
	}
}

func TestLinesUnknownCountry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	d.EXPECT().Lines(gomock.Any(), region.SouthAmericaID, []string{"Italy"}, false).
		Return(nil, fmt.Errorf("%w: Italy", series.ErrUnknownCountry)).Times(1)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/south-america/lines?countries=Italy", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorUnknownCountry, decodeError(t, w))
}

func TestMap(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	latitude, longitude := -14.0, -51.0
	d.EXPECT().Map(gomock.Any(), region.SouthAmericaID).Return(&schema.MapData{
		Kind:   schema.MapScatterGeo,
		Scope:  "south america",
		Points: []schema.MapPoint{{Country: "Brazil", Latitude: &latitude, Longitude: &longitude, Total: 20}},
	}, nil).Times(1)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/south-america/map?lang=pt-BR", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Title  string            `json:"title"`
		Kind   schema.MapKind    `json:"kind"`
		Points []schema.MapPoint `json:"points"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Casos de Covid-19 na América do Sul", resp.Title)
	assert.Equal(t, schema.MapScatterGeo, resp.Kind)
	assert.Len(t, resp.Points, 1)
}

func TestSnapshot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)

	confirmed := int64(20)
	snapshot := &schema.Snapshot{
		Date: lastUpdate,
		Rows: []schema.SnapshotRow{{Country: "Brazil", Confirmed: &confirmed}},
	}

	gomock.InOrder(
		d.EXPECT().Snapshot(gomock.Any(), region.WorldID, series.SortConfirmed, true).Return(snapshot, nil),
		d.EXPECT().Snapshot(gomock.Any(), region.WorldID, series.SortFatality, false).Return(snapshot, nil),
	)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/world/snapshot", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "desc", resp["order"])
	rows := resp["rows"].([]interface{})
	row := rows[0].(map[string]interface{})
	assert.Equal(t, float64(20), row["confirmed"])
	assert.Nil(t, row["deaths"], "missing value should be null")
	assert.Nil(t, row["fatality"], "undefined fatality should be null")

	w = serve(s, httptest.NewRequest("GET", "/api/regions/world/snapshot?sort=fatality&order=asc", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSnapshotInvalidParameters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/world/snapshot?sort=population", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorUnknownSortColumn, decodeError(t, w))

	w = serve(s, httptest.NewRequest("GET", "/api/regions/world/snapshot?order=sideways", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidParameters, decodeError(t, w))
}

func TestDatasetUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	d.EXPECT().Summary(gomock.Any(), region.WorldID).
		Return(nil, fmt.Errorf("%w: confirmed: timeout", dashboard.ErrDatasetUnavailable)).Times(1)

	w := serve(s, httptest.NewRequest("GET", "/api/regions/world/summary", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
	assert.Equal(t, errorDatasetUnavailable, decodeError(t, w))
}

func TestRegions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	req := httptest.NewRequest("GET", "/api/regions", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	w := serve(s, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Regions []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			DefaultLines int    `json:"default_lines"`
		} `json:"regions"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, resp.Regions, 2)
	assert.Equal(t, "Mundo", resp.Regions[0].Name)
	assert.Equal(t, 5, resp.Regions[0].DefaultLines)
	assert.Equal(t, 3, resp.Regions[1].DefaultLines)
}

func TestHealthz(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	d.EXPECT().Ready().Return(true).Times(1)

	w := serve(s, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "OK", resp["status"])
	assert.Equal(t, true, resp["ready"])
}

func TestInformation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, d := newTestServer(ctl)
	d.EXPECT().Sources().Return(dashboard.Sources{Confirmed: "http://feed/confirmed.csv"}).Times(1)

	w := serve(s, httptest.NewRequest("GET", "/api/information", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "http://feed/confirmed.csv")
}
