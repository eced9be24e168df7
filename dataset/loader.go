package dataset

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"golang.org/x/sync/singleflight"

	"github.com/bitmark-inc/covid-dashboard/external/jhu"
	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	logPrefix = "dataset"
)

// Source - interface to get a normalized table by its url
type Source interface {
	Load(ctx context.Context, url string) (*schema.Table, error)
}

// Loader downloads and normalizes time-series feeds. Each url is fetched once and
// kept until the process exits. Failed loads are not kept.
type Loader struct {
	fetcher jhu.Fetcher
	isoURL  string
	scope   tally.Scope

	group singleflight.Group

	sync.RWMutex
	tables map[string]*schema.Table
	codes  map[string]schema.CountryCodeMap
}

// NewLoader - new memoized loader, a nil scope disables metrics
func NewLoader(fetcher jhu.Fetcher, isoURL string, scope tally.Scope) *Loader {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Loader{
		fetcher: fetcher,
		isoURL:  isoURL,
		scope:   scope.SubScope("dataset"),
		tables:  make(map[string]*schema.Table),
		codes:   make(map[string]schema.CountryCodeMap),
	}
}

// Load returns the normalized table of url
func (l *Loader) Load(ctx context.Context, url string) (*schema.Table, error) {
	l.RLock()
	t, ok := l.tables[url]
	l.RUnlock()
	if ok {
		l.scope.Counter("cache_hit").Inc(1)
		return t, nil
	}

	// the shared fetch is detached from every caller's context, each caller
	// only stops waiting on its own
	ch := l.group.DoChan("table:"+url, func() (interface{}, error) {
		return l.load(url)
	})

	select {
	case <-ctx.Done():
		l.scope.Counter("error").Inc(1)
		return nil, ctx.Err()
	case res := <-ch:
		if nil != res.Err {
			l.scope.Counter("error").Inc(1)
			return nil, res.Err
		}
		return res.Val.(*schema.Table), nil
	}
}

// load fetches and normalizes url, bounded by the http client timeout
func (l *Loader) load(url string) (*schema.Table, error) {
	l.RLock()
	t, ok := l.tables[url]
	l.RUnlock()
	if ok {
		return t, nil
	}

	ctx := context.Background()

	raw, err := l.fetch(ctx, url)
	if nil != err {
		return nil, err
	}

	codes, err := l.countryCodes(ctx)
	if nil != err {
		return nil, err
	}

	t = Normalize(raw, codes)

	l.Lock()
	l.tables[url] = t
	l.Unlock()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"url":     url,
		"records": len(t.Records),
		"dropped": len(raw.Records) - len(t.Records),
	}).Info("dataset loaded")

	return t, nil
}

// Cached reports whether url is already loaded
func (l *Loader) Cached(url string) bool {
	l.RLock()
	defer l.RUnlock()
	_, ok := l.tables[url]
	return ok
}

func (l *Loader) fetch(ctx context.Context, url string) (*schema.RawTable, error) {
	l.scope.Counter("fetch").Inc(1)
	sw := l.scope.Timer("fetch_latency").Start()
	defer sw.Stop()

	return l.fetcher.TimeSeries(ctx, url)
}

func (l *Loader) countryCodes(ctx context.Context) (schema.CountryCodeMap, error) {
	l.RLock()
	codes, ok := l.codes[l.isoURL]
	l.RUnlock()
	if ok {
		return codes, nil
	}

	v, err, _ := l.group.Do("iso:"+l.isoURL, func() (interface{}, error) {
		start := time.Now()
		l.scope.Counter("fetch").Inc(1)
		codes, err := l.fetcher.CountryCodes(ctx, l.isoURL)
		l.scope.Timer("fetch_latency").Record(time.Since(start))
		if nil != err {
			return nil, err
		}

		l.Lock()
		l.codes[l.isoURL] = codes
		l.Unlock()

		return codes, nil
	})
	if nil != err {
		return nil, err
	}

	return v.(schema.CountryCodeMap), nil
}
