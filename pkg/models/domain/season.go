package domain

import "time"

// SeasonWindow is a named closed date interval [Start, End]
type SeasonWindow struct {
	Name  string    `mapstructure:"name"`
	Start time.Time `mapstructure:"start"`
	End   time.Time `mapstructure:"end"`
}

// Contains reports whether the calendar date of d falls inside the window, both ends inclusive
func (w SeasonWindow) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(DateOf(w.Start)) && !d.After(DateOf(w.End))
}

// ReferenceSeasons are the four windows of the mid-2024 to mid-2025 report
func ReferenceSeasons() []SeasonWindow {
	return []SeasonWindow{
		{Name: "Summer 2024", Start: NewDate(2024, time.June, 21), End: NewDate(2024, time.September, 20)},
		{Name: "Fall 2024", Start: NewDate(2024, time.September, 21), End: NewDate(2024, time.December, 20)},
		{Name: "Winter 2024-25", Start: NewDate(2024, time.December, 21), End: NewDate(2025, time.March, 19)},
		{Name: "Spring 2025", Start: NewDate(2025, time.March, 20), End: NewDate(2025, time.June, 20)},
	}
}
