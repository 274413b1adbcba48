package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimePoint is a single dated observation of an index level
type TimePoint struct {
	Date  time.Time
	Value float64
}

// NewDate builds a calendar date at UTC midnight
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time-of-day and location of t, keeping its calendar date
func DateOf(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Series is an ascending, duplicate-free sequence of observations with a date index.
// A Series is never mutated after NewSeries returns it.
type Series struct {
	name   string
	points []TimePoint
	byDate map[time.Time]int
}

// NewSeries validates ordering and builds the date index.
// Dates are normalized with DateOf before validation.
func NewSeries(name string, points []TimePoint) (Series, error) {
	s := Series{
		name:   name,
		points: make([]TimePoint, len(points)),
		byDate: make(map[time.Time]int, len(points)),
	}

	for i, p := range points {
		p.Date = DateOf(p.Date)
		if i > 0 {
			prev := s.points[i-1].Date
			if p.Date.Equal(prev) {
				return Series{}, fmt.Errorf("series %q: duplicate date %s", name, p.Date.Format(time.DateOnly))
			}
			if p.Date.Before(prev) {
				return Series{}, fmt.Errorf("series %q: date %s out of order after %s",
					name, p.Date.Format(time.DateOnly), prev.Format(time.DateOnly))
			}
		}
		s.points[i] = p
		s.byDate[p.Date] = i
	}
	return s, nil
}

// MustSeries is NewSeries for fixtures and literals; it panics on invalid input.
func MustSeries(name string, points []TimePoint) Series {
	s, err := NewSeries(name, points)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Series) Name() string {
	return s.name
}

func (s Series) Len() int {
	return len(s.points)
}

// Points returns a copy of the observations in ascending date order
func (s Series) Points() []TimePoint {
	out := make([]TimePoint, len(s.points))
	copy(out, s.points)
	return out
}

// At looks up the observation on the calendar date of d
func (s Series) At(d time.Time) (TimePoint, bool) {
	i, ok := s.byDate[DateOf(d)]
	if !ok {
		return TimePoint{}, false
	}
	return s.points[i], true
}

// Latest returns the most recent observation
func (s Series) Latest() (TimePoint, bool) {
	if len(s.points) == 0 {
		return TimePoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// SectorSeries maps a sector name to its own series
type SectorSeries map[string]Series

// Names returns sector names in lexicographic order
func (ss SectorSeries) Names() []string {
	names := make([]string, 0, len(ss))
	for name := range ss {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
