package jhu

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	ColumnProvince = "Province/State"
	ColumnCountry  = "Country/Region"
	ColumnLat      = "Lat"
	ColumnLong     = "Long"
	ColumnAlpha3   = "alpha3"
)

var (
	ErrMissingColumn   = errors.New("missing column")
	ErrNoDateColumns   = errors.New("no date columns")
	ErrUnorderedDates  = errors.New("date columns are not in ascending order")
	ErrInvalidCount    = errors.New("invalid count")
	ErrInvalidLocation = errors.New("invalid coordinate")
)

type header struct {
	index map[string]int
	dates []time.Time
	// position of each entry of dates
	datePos []int
}

func readHeader(r *csv.Reader, required ...string) (*header, error) {
	names, err := r.Read()
	if nil != err {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrMissingColumn)
		}
		return nil, err
	}

	h := &header{index: make(map[string]int, len(names))}
	for i, name := range names {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		h.index[name] = i

		if d, err := time.Parse(schema.DateLayout, name); err == nil {
			if n := len(h.dates); n > 0 && !d.After(h.dates[n-1]) {
				return nil, fmt.Errorf("%w: %s", ErrUnorderedDates, name)
			}
			h.dates = append(h.dates, d)
			h.datePos = append(h.datePos, i)
		}
	}

	for _, c := range required {
		if _, ok := h.index[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	return h, nil
}

// DecodeTimeSeries reads a wide format csse time-series csv.
// Columns are located by name and every header which parses as a date is a date column.
func DecodeTimeSeries(in io.Reader) (*schema.RawTable, error) {
	r := csv.NewReader(in)

	h, err := readHeader(r, ColumnProvince, ColumnCountry, ColumnLat, ColumnLong)
	if nil != err {
		return nil, err
	}

	if len(h.dates) == 0 {
		return nil, ErrNoDateColumns
	}

	t := &schema.RawTable{Dates: h.dates}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, err
		}

		record := schema.RawRecord{
			Province: strings.TrimSpace(row[h.index[ColumnProvince]]),
			Country:  strings.TrimSpace(row[h.index[ColumnCountry]]),
			Values:   make([]int64, len(h.dates)),
		}

		if record.Latitude, err = parseCoordinate(row[h.index[ColumnLat]]); nil != err {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if record.Longitude, err = parseCoordinate(row[h.index[ColumnLong]]); nil != err {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		for i, pos := range h.datePos {
			if record.Values[i], err = parseCount(row[pos]); nil != err {
				return nil, fmt.Errorf("line %d column %s: %w", line, h.dates[i].Format(schema.DateLayout), err)
			}
		}

		t.Records = append(t.Records, record)
	}

	return t, nil
}

// DecodeCountryCodes reads the country/region to alpha3 lookup.
// A name listed twice keeps the last code.
func DecodeCountryCodes(in io.Reader) (schema.CountryCodeMap, error) {
	r := csv.NewReader(in)

	h, err := readHeader(r, ColumnCountry, ColumnAlpha3)
	if nil != err {
		return nil, err
	}

	countryPos := h.index[ColumnCountry]
	alpha3Pos := h.index[ColumnAlpha3]

	codes := make(schema.CountryCodeMap)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, err
		}

		name := strings.TrimSpace(row[countryPos])
		code := strings.TrimSpace(row[alpha3Pos])
		if name == "" || code == "" {
			continue
		}

		if previous, ok := codes[name]; ok && previous != code {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"country":  name,
				"previous": previous,
				"alpha3":   code,
			}).Warn("ambiguous iso code, keep the last one")
		}
		codes[name] = code
	}

	return codes, nil
}

func parseCoordinate(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if nil != err {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	return &f, nil
}

func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	return int64(math.Round(f)), nil
}
