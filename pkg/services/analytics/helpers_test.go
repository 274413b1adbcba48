package analytics

import (
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

var (
	anchor    = domain.NewDate(2025, time.May, 1)
	lastWeek  = domain.NewDate(2025, time.April, 24)
	prevMonth = domain.NewDate(2025, time.April, 3)
)

func point(d time.Time, v float64) domain.TimePoint {
	return domain.TimePoint{Date: d, Value: v}
}

// weekly builds a weekly series ending on end, oldest value first
func weekly(name string, end time.Time, values ...float64) domain.Series {
	points := make([]domain.TimePoint, len(values))
	start := end.AddDate(0, 0, -7*(len(values)-1))
	for i, v := range values {
		points[i] = point(start.AddDate(0, 0, 7*i), v)
	}
	return domain.MustSeries(name, points)
}

// weekPair builds a sector with only today and last-week observations
func weekPair(name string, newValue, oldValue float64) domain.Series {
	return domain.MustSeries(name, []domain.TimePoint{point(lastWeek, oldValue), point(anchor, newValue)})
}
