package series

import (
	"math"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

// ChangeRate is the percentage increase from old to new. Growth from zero
// counts as 100 percent.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		}
		return float64(100)
	}

	return math.Round((new-old)/old*100*100) / 100
}

// DailyChange compares the last two points of a totals series
func DailyChange(points []schema.DatePoint) schema.Change {
	switch len(points) {
	case 0:
		return schema.Change{}
	case 1:
		last := points[0].Total
		return schema.Change{Delta: last, Rate: ChangeRate(float64(last), 0)}
	}

	last := points[len(points)-1].Total
	previous := points[len(points)-2].Total
	return schema.Change{
		Delta: last - previous,
		Rate:  ChangeRate(float64(last), float64(previous)),
	}
}
