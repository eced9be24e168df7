package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

func TestChangeRate(t *testing.T) {
	assert.Equal(t, float64(0), ChangeRate(0, 0))
	assert.Equal(t, float64(100), ChangeRate(5, 0))
	assert.Equal(t, float64(50), ChangeRate(15, 10))
	assert.Equal(t, float64(-25), ChangeRate(3, 4))
	assert.Equal(t, 94.12, ChangeRate(33, 17))
}

func TestDailyChange(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, schema.Change{}, DailyChange(nil))
	assert.Equal(t, schema.Change{Delta: 4, Rate: 100}, DailyChange([]schema.DatePoint{{Date: day(1), Total: 4}}))
	assert.Equal(t, schema.Change{Delta: 16, Rate: 94.12}, DailyChange([]schema.DatePoint{
		{Date: day(1), Total: 2},
		{Date: day(2), Total: 17},
		{Date: day(3), Total: 33},
	}))
}
