package analytics

import "github.com/de-tools/hiring-pulse/pkg/models/domain"

const (
	defaultWeekOffset  = 7  // days
	defaultMonthOffset = 28 // days, four weekly observations
)

// Params carries the calendar configuration every computation is relative to
type Params struct {
	WeekOffset  int // days between today and last week
	MonthOffset int // days between today and prev month
	Seasons     []domain.SeasonWindow
}

// DefaultParams returns the 7/28 day offsets and the reference season table
func DefaultParams() Params {
	return Params{
		WeekOffset:  defaultWeekOffset,
		MonthOffset: defaultMonthOffset,
		Seasons:     domain.ReferenceSeasons(),
	}
}
