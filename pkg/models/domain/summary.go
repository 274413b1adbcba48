package domain

import "time"

// NationalName labels the national series in long-view records
const NationalName = "national"

// DeltaRecord pairs two observations of one sector with the percentage-point move between them
type DeltaRecord struct {
	Sector  string
	New     TimePoint
	Old     TimePoint
	DeltaPP float64
}

// LongViewRecord bundles a current level, its month-over-month move and seasonal means.
// Seasonal only holds seasons with at least one observation.
type LongViewRecord struct {
	Name       string
	Current    float64
	DeltaMonth float64
	Seasonal   map[string]float64
}

// Summary is the single artifact of one report run
type Summary struct {
	Anchor          time.Time
	National        LongViewRecord
	NationalWeek    DeltaRecord
	BreadthPct      float64
	SectorsCompared int
	Leader          DeltaRecord
	LeaderView      LongViewRecord
	Laggard         DeltaRecord
	LaggardView     LongViewRecord
	Seasons         []SeasonWindow // declaration order, for display
}
