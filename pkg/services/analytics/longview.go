package analytics

import (
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

// SectorLongView composes the current level, the move since MonthOffset days ago and
// the seasonal means of one series. It is used for the national series as well.
func SectorLongView(series domain.Series, today time.Time, p Params) (domain.LongViewRecord, error) {
	current, err := lookup(series, today)
	if err != nil {
		return domain.LongViewRecord{}, err
	}
	prevMonth, err := lookup(series, today.AddDate(0, 0, -p.MonthOffset))
	if err != nil {
		return domain.LongViewRecord{}, err
	}

	return domain.LongViewRecord{
		Name:       series.Name(),
		Current:    current.Value,
		DeltaMonth: PctPointChange(current.Value, prevMonth.Value),
		Seasonal:   SeasonalMeans(series.Points(), p.Seasons),
	}, nil
}
