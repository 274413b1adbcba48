package analytics

import "github.com/de-tools/hiring-pulse/pkg/models/domain"

// PctPointChange is the additive move between two already-normalized index values
func PctPointChange(newValue, oldValue float64) float64 {
	return newValue - oldValue
}

// NewDeltaRecord pairs two observations and records the move from old to new
func NewDeltaRecord(sector string, newPoint, oldPoint domain.TimePoint) domain.DeltaRecord {
	return domain.DeltaRecord{
		Sector:  sector,
		New:     newPoint,
		Old:     oldPoint,
		DeltaPP: PctPointChange(newPoint.Value, oldPoint.Value),
	}
}
