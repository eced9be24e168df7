package jhu

import (
	"context"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	logPrefix = "jhu"

	DefaultConfirmedURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_confirmed_global.csv"
	DefaultDeathsURL    = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_deaths_global.csv"
	DefaultRecoveredURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_recovered_global.csv"
	DefaultISOURL       = "https://raw.githubusercontent.com/AnthonyEbert/COVID-19_ISO-3166/master/JohnsHopkins-to-A3.csv"
)

var (
	ErrResponseStatus = fmt.Errorf("unexpected response status")
)

// Fetcher - interface to download the csse time-series feeds and the iso lookup
type Fetcher interface {
	TimeSeries(ctx context.Context, url string) (*schema.RawTable, error)
	CountryCodes(ctx context.Context, url string) (schema.CountryCodeMap, error)
}

type jhu struct {
	client *http.Client
}

func (j jhu) TimeSeries(ctx context.Context, url string) (*schema.RawTable, error) {
	body, err := j.get(ctx, url)
	if nil != err {
		return nil, err
	}
	defer body.Close()

	t, err := DecodeTimeSeries(body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("decode time series csv")
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"url":     url,
		"records": len(t.Records),
		"dates":   len(t.Dates),
	}).Debug("time series downloaded")

	return t, nil
}

func (j jhu) CountryCodes(ctx context.Context, url string) (schema.CountryCodeMap, error) {
	body, err := j.get(ctx, url)
	if nil != err {
		return nil, err
	}
	defer body.Close()

	codes, err := DecodeCountryCodes(body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("decode iso csv")
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return codes, nil
}

func (j jhu) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := j.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get csv")
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("get csv")
		return nil, fmt.Errorf("%w: %s returned %d", ErrResponseStatus, url, resp.StatusCode)
	}

	return resp.Body, nil
}

// New - new csse feed fetcher, a nil client means http.DefaultClient
func New(client *http.Client) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &jhu{
		client: client,
	}
}
